package dto

import (
	"atrium/internal/domains/reservation/model"
	"atrium/shared"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	AuditoriumID string `json:"auditorium_id" validate:"required,uuid"`
	Date         string `json:"date"          validate:"required,datetime=2006-01-02"`
	TimeSlot     int    `json:"time_slot"     validate:"required,min=10,max=22"`
	Title        string `json:"title"         validate:"required,max=255"`
}

func (c *CreateReservationRequest) ToModel(date time.Time, user string) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		AuditoriumID:    c.AuditoriumID,
		ReservationDate: date,
		TimeSlot:        c.TimeSlot,
		Title:           c.Title,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateReservationRequest only carries the title. The auditorium, date and
// slot of a reservation are immutable; moving a booking is delete plus create
// so the conflict checks always run.
type UpdateReservationRequest struct {
	Title string `db:"title" json:"title" validate:"required,max=255"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	AuditoriumID string `json:"auditorium_id"`
	Date         string `json:"date"`
	TimeSlot     int    `json:"time_slot"`
	Title        string `json:"title"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.AuditoriumID = model.AuditoriumID
	r.Date = model.ReservationDate.Format(constant.CalendarDateFormat)
	r.TimeSlot = model.TimeSlot
	r.Title = model.Title
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
