package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	EmpID      string `json:"emp_id,omitempty"`
	Department string `json:"department,omitempty"`
}

type TokenResponse struct {
	Token   string       `json:"token"`
	Profile AuthResponse `json:"profile"`
}
