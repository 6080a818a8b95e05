package dto

import (
	"atrium/internal/domains/event/model"
	"atrium/shared"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateEventRequest) ToModel(date time.Time, user string) model.Event {
	return model.Event{
		ID:          uuid.NewString(),
		Name:        c.Name,
		EventDate:   date,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEventRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Date        string `json:"date"                         validate:"omitempty,datetime=2006-01-02"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
}

type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Name = model.Name
	r.Date = model.EventDate.Format(constant.CalendarDateFormat)
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
