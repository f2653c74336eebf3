package events

import "time"

const TaskLifecycleTopic = "workboard.task.lifecycle.v1"

const (
	EventTaskCreated            = "task.created"
	EventTaskUpdated            = "task.updated"
	EventTaskOverdue            = "task.overdue"
	EventTaskExtensionRequested = "task.extension_requested"
	EventTaskExtensionApproved  = "task.extension_approved"
	EventTaskExtensionRejected  = "task.extension_rejected"
	EventTaskCompletionRequest  = "task.completion_requested"
	EventTaskCompletionApproved = "task.completion_approved"
	EventTaskCompletionRejected = "task.completion_rejected"
)

// TaskEvent is published for every task lifecycle step and feeds the activity log.
type TaskEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	TaskID        string    `json:"task_id"`
	ActorID       string    `json:"actor_id,omitempty"`
	ActorName     string    `json:"actor_name,omitempty"`
	ActorRole     string    `json:"actor_role,omitempty"`
	Status        string    `json:"status"`
	RequestStatus string    `json:"request_status,omitempty"`
	Note          string    `json:"note,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
