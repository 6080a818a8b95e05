package dto

import "time"

// SchedulingEvent is the audit payload published after every successful
// schedule or reservation mutation.
type SchedulingEvent struct {
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Name       string    `json:"name"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}
