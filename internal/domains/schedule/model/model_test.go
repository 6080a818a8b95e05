package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditoriumModel "atrium/internal/domains/auditorium/model"
	congregationModel "atrium/internal/domains/congregation/model"
	reservationModel "atrium/internal/domains/reservation/model"
	"atrium/internal/domains/schedule/model"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func gridFixture() ([]auditoriumModel.Auditorium, []congregationModel.Congregation, []reservationModel.Reservation) {
	auditoriums := []auditoriumModel.Auditorium{
		{ID: "aud-1", Name: "Main Hall", Color: "#3b82f6"},
		{ID: "aud-2", Name: "Annex", Color: "#ef4444"},
	}

	congregations := []congregationModel.Congregation{
		{
			ID:           "north-id",
			Name:         "North",
			AuditoriumID: strp("aud-1"),
			DayOfWeek:    intp(0),
			TimeSlot1:    intp(10),
			TimeSlot2:    intp(11),
			DayOfWeek2:   intp(3),
			TimeSlot3:    intp(19),
		},
		{
			ID:           "homeless-id",
			Name:         "Homeless",
			AuditoriumID: nil,
			DayOfWeek:    intp(0),
			TimeSlot1:    intp(12),
		},
	}

	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	reservations := []reservationModel.Reservation{
		{ID: "res-1", AuditoriumID: "aud-1", ReservationDate: sunday, TimeSlot: 14, Title: "Circuit visit"},
		{ID: "res-2", AuditoriumID: "aud-1", ReservationDate: sunday, TimeSlot: 10, Title: "Stray booking"},
		{ID: "res-3", AuditoriumID: "aud-2", ReservationDate: sunday, TimeSlot: 10, Title: "Cleaning"},
	}

	return auditoriums, congregations, reservations
}

func cellAt(t *testing.T, grids []model.AuditoriumGrid, auditoriumID string, slot int) model.Cell {
	t.Helper()

	for _, grid := range grids {
		if grid.AuditoriumID != auditoriumID {
			continue
		}

		for _, cell := range grid.Cells {
			if cell.TimeSlot == slot {
				return cell
			}
		}
	}

	t.Fatalf("no cell for auditorium %s slot %d", auditoriumID, slot)

	return model.Cell{}
}

func TestBuildGrid_EveryCellHasExactlyOneState(t *testing.T) {
	auditoriums, congregations, reservations := gridFixture()

	grids := model.BuildGrid(0, auditoriums, congregations, reservations)

	require.Len(t, grids, 2)

	for _, grid := range grids {
		assert.Len(t, grid.Cells, 13)

		for _, cell := range grid.Cells {
			assert.Contains(t, []string{model.StatusFree, model.StatusFixed, model.StatusReserved}, cell.Status)
			assert.GreaterOrEqual(t, cell.TimeSlot, 10)
			assert.LessOrEqual(t, cell.TimeSlot, 22)
		}
	}
}

func TestBuildGrid_FixedCells(t *testing.T) {
	auditoriums, congregations, reservations := gridFixture()

	grids := model.BuildGrid(0, auditoriums, congregations, reservations)

	for _, slot := range []int{10, 11} {
		cell := cellAt(t, grids, "aud-1", slot)
		assert.Equal(t, model.StatusFixed, cell.Status)
		assert.Equal(t, "North", cell.Label)
	}
}

func TestBuildGrid_FixedWinsOverReservation(t *testing.T) {
	auditoriums, congregations, reservations := gridFixture()

	grids := model.BuildGrid(0, auditoriums, congregations, reservations)

	// Slot 10 in aud-1 has both a fixed claim and a stray reservation row.
	cell := cellAt(t, grids, "aud-1", 10)
	assert.Equal(t, model.StatusFixed, cell.Status)
	assert.Equal(t, "North", cell.Label)
}

func TestBuildGrid_ReservedCells(t *testing.T) {
	auditoriums, congregations, reservations := gridFixture()

	grids := model.BuildGrid(0, auditoriums, congregations, reservations)

	cell := cellAt(t, grids, "aud-1", 14)
	assert.Equal(t, model.StatusReserved, cell.Status)
	assert.Equal(t, "Circuit visit", cell.Label)

	cell = cellAt(t, grids, "aud-2", 10)
	assert.Equal(t, model.StatusReserved, cell.Status)
	assert.Equal(t, "Cleaning", cell.Label)
}

func TestBuildGrid_WeekdayScopesFixedClaims(t *testing.T) {
	auditoriums, congregations, reservations := gridFixture()

	// On a Wednesday only North's second meeting claims anything.
	grids := model.BuildGrid(3, auditoriums, congregations, reservations)

	cell := cellAt(t, grids, "aud-1", 10)
	assert.Equal(t, model.StatusReserved, cell.Status, "meeting 1 claims nothing outside its weekday")

	cell = cellAt(t, grids, "aud-1", 19)
	assert.Equal(t, model.StatusFixed, cell.Status)
	assert.Equal(t, "North", cell.Label)
}

func TestBuildGrid_AuditoriumlessCongregationClaimsNothing(t *testing.T) {
	auditoriums, congregations, reservations := gridFixture()

	grids := model.BuildGrid(0, auditoriums, congregations, reservations)

	for _, grid := range grids {
		cell := cellAt(t, grids, grid.AuditoriumID, 12)
		assert.NotEqual(t, model.StatusFixed, cell.Status)
	}
}
