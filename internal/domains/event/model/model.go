package model

import (
	"time"

	"atrium/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID          = "id"
	FieldName        = "name"
	FieldEventDate   = "event_date"
	FieldDescription = "description"
)

// Event is a special-event record (assemblies, conventions, campaigns).
// Purely informational; events never claim auditorium slots.
type Event struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	EventDate   time.Time `db:"event_date"`
	Description string    `db:"description"`
	model.Metadata
}
