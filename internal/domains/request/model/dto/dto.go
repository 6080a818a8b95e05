package dto

import (
	"atrium/internal/domains/request/model"
	"atrium/shared/constant"
	"atrium/shared/timezone"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	Name         string   `json:"name"          validate:"required,max=100"`
	Year         int      `json:"year"          validate:"required,gte=2000,lte=2100"`
	Months       []string `json:"months"        validate:"omitempty,dive,required"`
	IsContinuous bool     `json:"is_continuous"`
	Hours        int      `json:"hours"         validate:"omitempty,oneof=15 30"`
}

// ToModel stamps the application as pending with the current moment as the
// request date. Continuous applications drop their month list.
func (c *CreateRequestRequest) ToModel(user string) model.Request {
	months := c.Months
	hours := c.Hours

	if c.IsContinuous {
		months = nil
		hours = 0
	}

	return model.Request{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Year:         c.Year,
		Months:       months,
		IsContinuous: c.IsContinuous,
		Hours:        hours,
		RequestDate:  timezone.Now(),
		Status:       model.StatusPending,
		CreatedAt:    timezone.Now(),
		CreatedBy:    user,
		ModifiedAt:   timezone.Now(),
		ModifiedBy:   user,
	}
}

type RequestResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Year         int      `json:"year"`
	Months       []string `json:"months,omitempty"`
	IsContinuous bool     `json:"is_continuous"`
	Hours        int      `json:"hours,omitempty"`
	RequestDate  string   `json:"request_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Status       string   `json:"status"`
}

func (r *RequestResponse) FromModel(model model.Request) {
	r.ID = model.ID
	r.Name = model.Name
	r.Year = model.Year
	r.Months = model.Months
	r.IsContinuous = model.IsContinuous
	r.Hours = model.Hours
	r.RequestDate = model.RequestDate.Format(constant.CalendarDateFormat)
	r.Status = model.Status

	if model.EndDate != nil {
		r.EndDate = model.EndDate.Format(constant.CalendarDateFormat)
	}
}

type GetRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}

func (r *GetRequestsResponse) FromModels(models []model.Request) {
	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
