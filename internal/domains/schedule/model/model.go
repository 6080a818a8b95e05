package model

import (
	auditoriumModel "atrium/internal/domains/auditorium/model"
	congregationModel "atrium/internal/domains/congregation/model"
	reservationModel "atrium/internal/domains/reservation/model"
	"atrium/shared/constant"
)

const (
	StatusFree     = "free"
	StatusFixed    = "fixed"
	StatusReserved = "reserved"
)

// Cell is the classification of one (auditorium, hour slot) pair on a date.
// Label carries the congregation name for fixed cells and the reservation
// title for reserved cells.
type Cell struct {
	TimeSlot int
	Status   string
	Label    string
}

type AuditoriumGrid struct {
	AuditoriumID string
	Name         string
	Color        string
	Cells        []Cell
}

// BuildGrid classifies every (auditorium, slot) cell of a single date into
// fixed, reserved or free. Fixed wins over reserved: a congregation claiming
// the weekday with either of its meetings owns the cell even when a stray
// reservation row exists for it. Reservations must already be scoped to the
// date in question.
//
// The function is pure and runs on every grid render.
func BuildGrid(
	weekday int,
	auditoriums []auditoriumModel.Auditorium,
	congregations []congregationModel.Congregation,
	reservations []reservationModel.Reservation,
) []AuditoriumGrid {
	grids := make([]AuditoriumGrid, len(auditoriums))

	for i, auditorium := range auditoriums {
		grid := AuditoriumGrid{
			AuditoriumID: auditorium.ID,
			Name:         auditorium.Name,
			Color:        auditorium.Color,
			Cells:        make([]Cell, 0, constant.GridLastHour-constant.GridFirstHour+1),
		}

		for slot := constant.GridFirstHour; slot <= constant.GridLastHour; slot++ {
			grid.Cells = append(grid.Cells, classifyCell(auditorium.ID, weekday, slot, congregations, reservations))
		}

		grids[i] = grid
	}

	return grids
}

func classifyCell(
	auditoriumID string,
	weekday, slot int,
	congregations []congregationModel.Congregation,
	reservations []reservationModel.Reservation,
) Cell {
	for idx := range congregations {
		congregation := &congregations[idx]
		if congregation.AuditoriumID == nil || *congregation.AuditoriumID != auditoriumID {
			continue
		}

		if claims(congregation.Meeting1(), weekday, slot) || claims(congregation.Meeting2(), weekday, slot) {
			return Cell{TimeSlot: slot, Status: StatusFixed, Label: congregation.Name}
		}
	}

	for idx := range reservations {
		reservation := &reservations[idx]
		if reservation.AuditoriumID == auditoriumID && reservation.TimeSlot == slot {
			return Cell{TimeSlot: slot, Status: StatusReserved, Label: reservation.Title}
		}
	}

	return Cell{TimeSlot: slot, Status: StatusFree}
}

func claims(meeting congregationModel.Meeting, weekday, slot int) bool {
	return meeting.Active() && meeting.OnDay(weekday) && meeting.HasSlot(slot)
}
