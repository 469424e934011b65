package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name       string           `json:"name" binding:"required"`
	Salary     *decimal.Decimal `json:"salary" binding:"required"`
	Department string           `json:"department"`
}

type SetSalaryRequest struct {
	Salary *decimal.Decimal `json:"salary" binding:"required"`
}

// RaiseSalaryRequest raises (or, with a negative value, cuts) a salary by a
// percentage of its current value.
type RaiseSalaryRequest struct {
	Percent *decimal.Decimal `json:"percent" binding:"required"`
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Salary     string `json:"salary"`
	Department string `json:"department,omitempty"`
}

type SalaryChangeResponse struct {
	EmployeeID     int64  `json:"employee_id"`
	PreviousSalary string `json:"previous_salary"`
	NewSalary      string `json:"new_salary"`
	Changed        bool   `json:"changed"`
	AuditLogID     *int64 `json:"audit_log_id,omitempty"`
}

type DepartmentCountResponse struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}
