package models

// PlanEvent is the message published to Kafka on every plan mutation.
type PlanEvent struct {
	EventID   string `json:"event_id"`
	PlanID    string `json:"plan_id"`
	UserID    string `json:"user_id"`
	Operation string `json:"operation"` // created, updated, deleted
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
