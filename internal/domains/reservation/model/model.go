package model

import (
	"time"

	"atrium/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldAuditoriumID    = "auditorium_id"
	FieldReservationDate = "reservation_date"
	FieldTimeSlot        = "time_slot"
	FieldTitle           = "title"
)

// Reservation is a one-off booking of a single (auditorium, date, slot) cell.
// It never recurs; the date fully identifies the claim together with the slot.
type Reservation struct {
	ID              string    `db:"id"`
	AuditoriumID    string    `db:"auditorium_id"`
	ReservationDate time.Time `db:"reservation_date"`
	TimeSlot        int       `db:"time_slot"`
	Title           string    `db:"title"`
	model.Metadata
}
