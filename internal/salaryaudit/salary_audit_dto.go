package salaryaudit

import "time"

type SalaryAuditResponse struct {
	LogID      int64     `json:"log_id"`
	EmployeeID int64     `json:"employee_id"`
	OldSalary  *string   `json:"old_salary"`
	NewSalary  string    `json:"new_salary"`
	ChangeDate time.Time `json:"change_date"`
}
