package dto

import (
	"atrium/internal/domains/auditorium/model"
	"atrium/shared"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"

	"github.com/google/uuid"
)

const defaultColor = "#3b82f6"

type CreateAuditoriumRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

func (c *CreateAuditoriumRequest) ToModel(user string) model.Auditorium {
	color := c.Color
	if color == "" {
		color = defaultColor
	}

	return model.Auditorium{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Color: color,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAuditoriumRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=255"`
	Color string `db:"color" json:"color" validate:"omitempty,hexcolor"`
}

type AuditoriumResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	gDto.Metadata
}

func (r *AuditoriumResponse) FromModel(model model.Auditorium) {
	r.ID = model.ID
	r.Name = model.Name
	r.Color = model.Color
	r.Metadata.FromModel(model.Metadata)
}

type GetAuditoriumsResponse struct {
	Auditoriums []AuditoriumResponse `json:"auditoriums"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAuditoriumsResponse) FromModels(models []model.Auditorium, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Auditoriums = make([]AuditoriumResponse, len(models))
	for i, mod := range models {
		r.Auditoriums[i].FromModel(mod)
	}
}
