package dto

import "atrium/internal/domains/schedule/model"

type CellResponse struct {
	TimeSlot int    `json:"time_slot"`
	Status   string `json:"status"`
	Label    string `json:"label,omitempty"`
}

type AuditoriumGridResponse struct {
	AuditoriumID string         `json:"auditorium_id"`
	Name         string         `json:"name"`
	Color        string         `json:"color"`
	Cells        []CellResponse `json:"cells"`
}

type GridResponse struct {
	Date        string                   `json:"date"`
	Weekday     int                      `json:"weekday"`
	Auditoriums []AuditoriumGridResponse `json:"auditoriums"`
}

func (r *GridResponse) FromGrids(date string, weekday int, grids []model.AuditoriumGrid) {
	r.Date = date
	r.Weekday = weekday

	r.Auditoriums = make([]AuditoriumGridResponse, len(grids))
	for i, grid := range grids {
		cells := make([]CellResponse, len(grid.Cells))
		for j, cell := range grid.Cells {
			cells[j] = CellResponse{TimeSlot: cell.TimeSlot, Status: cell.Status, Label: cell.Label}
		}

		r.Auditoriums[i] = AuditoriumGridResponse{
			AuditoriumID: grid.AuditoriumID,
			Name:         grid.Name,
			Color:        grid.Color,
			Cells:        cells,
		}
	}
}
