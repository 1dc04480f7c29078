package events

import "time"

const PeriodCalculatedTopic = "backoffice.payroll.period.v1"

type PeriodCalculatedEvent struct {
	EventType          string    `json:"event_type"`
	PeriodID           string    `json:"period_id"`
	BranchID           string    `json:"branch_id"`
	EmployeesProcessed int       `json:"employees_processed"`
	TotalGross         string    `json:"total_gross"`
	TotalNet           string    `json:"total_net"`
	OccurredAt         time.Time `json:"occurred_at"`
}
