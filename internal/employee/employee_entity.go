package employee

import (
	"time"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"

	DefaultDepartment = "Unknown"
)

// Employee is keyed by its login username. EmpID is the externally visible
// badge number; it is a display field only and carries no unique index,
// matching the store this replaces.
type Employee struct {
	Username      string  `gorm:"primaryKey;size:120"`
	Name          string  `gorm:"size:200"`
	Email         string  `gorm:"size:200"`
	EmpID         string  `gorm:"column:emp_id;size:40;index"`
	MonthlySalary float64 `gorm:"type:numeric(12,2);not null;default:0"`
	DaysWorked    int     `gorm:"not null;default:0"`
	Department    string  `gorm:"size:120;not null;default:'Unknown'"`
	Status        string  `gorm:"size:16;not null;default:'Active'"`
	// Pending means payroll has been (re)queued for this employee and is
	// awaiting an approval run.
	Pending      bool   `gorm:"not null;default:true"`
	PasswordHash string `gorm:"column:password;size:120"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}
