package payroll

import (
	"time"
)

// Record is one settled payroll entry. Rows are append-only: the approval
// transition creates them and nothing in the system updates or deletes one
// (short of the owning employee being removed).
type Record struct {
	EmployeeUsername string    `gorm:"primaryKey;size:120" json:"employee_username"`
	ProcessedAt      time.Time `gorm:"primaryKey" json:"processed_at"`
	Gross            float64   `gorm:"type:numeric(14,2);not null" json:"gross"`
	Tax              float64   `gorm:"type:numeric(14,2);not null" json:"tax"`
	Net              float64   `gorm:"type:numeric(14,2);not null" json:"net"`
}

func (Record) TableName() string {
	return "payroll_records"
}
