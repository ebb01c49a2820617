package payroll

// ApprovalResult reports one approval run. Created counts employees that
// transitioned pending -> settled; Unchanged counts those already settled.
type ApprovalResult struct {
	Created   int `json:"created"`
	Unchanged int `json:"unchanged"`
}

type RecordResponse struct {
	Gross       float64 `json:"gross"`
	Tax         float64 `json:"tax"`
	Net         float64 `json:"net"`
	ProcessedAt string  `json:"processed_at"`
}

// PreviewResponse is the employee-portal view: what the next approval run
// would settle for this employee, given current salary and attendance.
type PreviewResponse struct {
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	MonthlySalary float64   `json:"monthly_salary"`
	DaysWorked    int       `json:"days_worked"`
	Breakdown     Breakdown `json:"breakdown"`
	Pending       bool      `json:"pending"`
}

// SummaryResponse backs the admin dashboard cards.
type SummaryResponse struct {
	TotalEmployees  int     `json:"total_employees"`
	ActiveEmployees int     `json:"active_employees"`
	PendingPayroll  int     `json:"pending_payroll"`
	PendingNetTotal float64 `json:"pending_net_total"`
}
