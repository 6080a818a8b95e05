package dto

import (
	"atrium/internal/domains/congregation/model"
	"atrium/shared"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"

	"github.com/google/uuid"
)

// ScheduleRequest is the full weekly schedule of a congregation. Writes
// replace every schedule column, so omitted fields clear the stored value.
type ScheduleRequest struct {
	AuditoriumID *string `json:"auditorium_id" validate:"omitempty,uuid"`
	DayOfWeek    *int    `json:"day_of_week"   validate:"omitempty,min=0,max=6"`
	TimeSlot1    *int    `json:"time_slot_1"   validate:"omitempty,min=10,max=22"`
	TimeSlot2    *int    `json:"time_slot_2"   validate:"omitempty,min=10,max=22"`
	DayOfWeek2   *int    `json:"day_of_week_2" validate:"omitempty,min=0,max=6"`
	TimeSlot3    *int    `json:"time_slot_3"   validate:"omitempty,min=10,max=22"`
	TimeSlot4    *int    `json:"time_slot_4"   validate:"omitempty,min=10,max=22"`
}

type CreateCongregationRequest struct {
	Name         string `json:"name"          validate:"required,max=255"`
	Address      string `json:"address"       validate:"omitempty,max=500"`
	ContactName  string `json:"contact_name"  validate:"omitempty,max=255"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=50"`
	ScheduleRequest
}

func (c *CreateCongregationRequest) ToModel(user string) model.Congregation {
	return model.Congregation{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Address:      c.Address,
		ContactName:  c.ContactName,
		ContactPhone: c.ContactPhone,
		AuditoriumID: c.AuditoriumID,
		DayOfWeek:    c.DayOfWeek,
		TimeSlot1:    c.TimeSlot1,
		TimeSlot2:    c.TimeSlot2,
		DayOfWeek2:   c.DayOfWeek2,
		TimeSlot3:    c.TimeSlot3,
		TimeSlot4:    c.TimeSlot4,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCongregationRequest struct {
	Name         string `json:"name"          validate:"required,max=255"`
	Address      string `json:"address"       validate:"omitempty,max=500"`
	ContactName  string `json:"contact_name"  validate:"omitempty,max=255"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=50"`
	ScheduleRequest
}

// ToCandidate builds the schedule candidate used by the conflict check.
func (u *UpdateCongregationRequest) ToCandidate(id string) model.Congregation {
	return model.Congregation{
		ID:           id,
		Name:         u.Name,
		AuditoriumID: u.AuditoriumID,
		DayOfWeek:    u.DayOfWeek,
		TimeSlot1:    u.TimeSlot1,
		TimeSlot2:    u.TimeSlot2,
		DayOfWeek2:   u.DayOfWeek2,
		TimeSlot3:    u.TimeSlot3,
		TimeSlot4:    u.TimeSlot4,
	}
}

// ToFields maps every column explicitly. Schedule edits are atomic
// replacements, so nil slots must reach the database as NULL instead of
// being skipped as zero values.
func (u *UpdateCongregationRequest) ToFields(user string) map[string]any {
	return map[string]any{
		model.FieldName:         u.Name,
		model.FieldAddress:      u.Address,
		model.FieldContactName:  u.ContactName,
		model.FieldContactPhone: u.ContactPhone,
		model.FieldAuditoriumID: u.AuditoriumID,
		model.FieldDayOfWeek:    u.DayOfWeek,
		model.FieldTimeSlot1:    u.TimeSlot1,
		model.FieldTimeSlot2:    u.TimeSlot2,
		model.FieldDayOfWeek2:   u.DayOfWeek2,
		model.FieldTimeSlot3:    u.TimeSlot3,
		model.FieldTimeSlot4:    u.TimeSlot4,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

type CongregationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	ContactName  string  `json:"contact_name"`
	ContactPhone string  `json:"contact_phone"`
	AuditoriumID *string `json:"auditorium_id"`
	DayOfWeek    *int    `json:"day_of_week"`
	TimeSlot1    *int    `json:"time_slot_1"`
	TimeSlot2    *int    `json:"time_slot_2"`
	DayOfWeek2   *int    `json:"day_of_week_2"`
	TimeSlot3    *int    `json:"time_slot_3"`
	TimeSlot4    *int    `json:"time_slot_4"`
	gDto.Metadata
}

func (r *CongregationResponse) FromModel(model model.Congregation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.ContactName = model.ContactName
	r.ContactPhone = model.ContactPhone
	r.AuditoriumID = model.AuditoriumID
	r.DayOfWeek = model.DayOfWeek
	r.TimeSlot1 = model.TimeSlot1
	r.TimeSlot2 = model.TimeSlot2
	r.DayOfWeek2 = model.DayOfWeek2
	r.TimeSlot3 = model.TimeSlot3
	r.TimeSlot4 = model.TimeSlot4
	r.Metadata.FromModel(model.Metadata)
}

type GetCongregationsResponse struct {
	Congregations []CongregationResponse `json:"congregations"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetCongregationsResponse) FromModels(models []model.Congregation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Congregations = make([]CongregationResponse, len(models))
	for i, mod := range models {
		r.Congregations[i].FromModel(mod)
	}
}
