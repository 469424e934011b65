package events

import "time"

const SalaryChangedTopic = "hr.employee.salary.changed.v1"

const SalaryChangedEventType = "salary_changed"

// SalaryChangedEvent mirrors one salary_audit_log row for downstream consumers.
// Amounts are decimal strings with two fraction digits.
type SalaryChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	AuditLogID int64     `json:"audit_log_id"`
	OldSalary  string    `json:"old_salary"`
	NewSalary  string    `json:"new_salary"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
