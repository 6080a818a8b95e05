package model

import "atrium/shared/model"

const (
	TableName  = "congregations"
	EntityName = "congregation"

	FieldID           = "id"
	FieldName         = "name"
	FieldAddress      = "address"
	FieldContactName  = "contact_name"
	FieldContactPhone = "contact_phone"
	FieldAuditoriumID = "auditorium_id"
	FieldDayOfWeek    = "day_of_week"
	FieldTimeSlot1    = "time_slot_1"
	FieldTimeSlot2    = "time_slot_2"
	FieldDayOfWeek2   = "day_of_week_2"
	FieldTimeSlot3    = "time_slot_3"
	FieldTimeSlot4    = "time_slot_4"
)

// Congregation holds contact data plus up to two independent weekly meeting
// definitions. Schedule columns are nullable; a meeting with no day or no
// slots is not considered scheduled.
type Congregation struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Address      string  `db:"address"`
	ContactName  string  `db:"contact_name"`
	ContactPhone string  `db:"contact_phone"`
	AuditoriumID *string `db:"auditorium_id"`
	DayOfWeek    *int    `db:"day_of_week"`
	TimeSlot1    *int    `db:"time_slot_1"`
	TimeSlot2    *int    `db:"time_slot_2"`
	DayOfWeek2   *int    `db:"day_of_week_2"`
	TimeSlot3    *int    `db:"time_slot_3"`
	TimeSlot4    *int    `db:"time_slot_4"`
	model.Metadata
}

// Meeting is one weekly meeting definition: a day of week (0 = Sunday) and up
// to two hour slots.
type Meeting struct {
	Day   *int
	SlotA *int
	SlotB *int
}

func (c *Congregation) Meeting1() Meeting {
	return Meeting{Day: c.DayOfWeek, SlotA: c.TimeSlot1, SlotB: c.TimeSlot2}
}

func (c *Congregation) Meeting2() Meeting {
	return Meeting{Day: c.DayOfWeek2, SlotA: c.TimeSlot3, SlotB: c.TimeSlot4}
}

// Active reports whether the meeting is fully defined enough to claim slots:
// day set and at least one slot set.
func (m Meeting) Active() bool {
	return m.Day != nil && (m.SlotA != nil || m.SlotB != nil)
}

func (m Meeting) OnDay(day int) bool {
	return m.Day != nil && *m.Day == day
}

func (m Meeting) HasSlot(slot int) bool {
	return (m.SlotA != nil && *m.SlotA == slot) || (m.SlotB != nil && *m.SlotB == slot)
}

// Overlaps reports whether two meetings claim the same day and share at least
// one slot. Half-defined meetings never overlap anything.
func (m Meeting) Overlaps(other Meeting) bool {
	if !m.Active() || !other.Active() {
		return false
	}

	if *m.Day != *other.Day {
		return false
	}

	if m.SlotA != nil && other.HasSlot(*m.SlotA) {
		return true
	}

	return m.SlotB != nil && other.HasSlot(*m.SlotB)
}
