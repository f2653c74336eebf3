package activity

type EntryResponse struct {
	ID            string `json:"id"`
	TaskID        string `json:"taskId"`
	EventType     string `json:"eventType"`
	ActorID       string `json:"actorId,omitempty"`
	ActorName     string `json:"actorName,omitempty"`
	ActorRole     string `json:"actorRole,omitempty"`
	Status        string `json:"status"`
	RequestStatus string `json:"requestStatus,omitempty"`
	Note          string `json:"note,omitempty"`
	OccurredAt    string `json:"occurredAt"`
}
