package salaryaudit

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAuditLog is one append-only row of salary_audit_log. Rows are written
// once, inside the transaction that changed the salary, and never updated.
type SalaryAuditLog struct {
	LogID      int64               `gorm:"column:log_id;primaryKey;autoIncrement"`
	EmployeeID int64               `gorm:"column:employee_id;index;not null"`
	OldSalary  decimal.NullDecimal `gorm:"column:old_salary;type:numeric(12,2)"`
	NewSalary  decimal.Decimal     `gorm:"column:new_salary;type:numeric(12,2);not null"`
	ChangeDate time.Time           `gorm:"column:change_date;not null"`
}

func (SalaryAuditLog) TableName() string {
	return "salary_audit_log"
}
