package employee

// UpsertEmployeeRequest carries the raw form fields. Salary and days arrive
// as strings because the capture surface is free-text input; the service owns
// parsing and range checks.
type UpsertEmployeeRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	EmpID         string `json:"emp_id"`
	MonthlySalary string `json:"monthly_salary" binding:"required"`
	DaysWorked    string `json:"days_worked" binding:"required"`
	Department    string `json:"department"`
	Status        string `json:"status"`
	// Empty password keeps the existing credential (or assigns the
	// configured onboarding default for a brand-new username).
	Password string `json:"password"`
}

type EmployeeResponse struct {
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	EmpID         string  `json:"emp_id"`
	MonthlySalary float64 `json:"monthly_salary"`
	DaysWorked    int     `json:"days_worked"`
	Department    string  `json:"department"`
	Status        string  `json:"status"`
	Pending       bool    `json:"pending"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// DirectoryEntry is the lightweight projection served from the cached
// employee directory (admin pickers, dashboards).
type DirectoryEntry struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	EmpID      string `json:"emp_id"`
	Department string `json:"department"`
	Status     string `json:"status"`
}
