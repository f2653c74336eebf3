package events

import "time"

const EmployeeLifecycleTopic = "workboard.employee.lifecycle.v1"

const EventEmployeeCreated = "employee.created"

type EmployeeCreatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
