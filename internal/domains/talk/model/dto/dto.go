package dto

import (
	"atrium/internal/domains/talk/model"
	"atrium/shared/constant"
	"atrium/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type PioneerTalkRequest struct {
	Year          int    `json:"year"           validate:"required,gte=2000,lte=2100"`
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	Speaker1      string `json:"speaker_1"      validate:"required,max=100"`
	Speaker2      string `json:"speaker_2"      validate:"omitempty,max=100"`
	OpeningPrayer string `json:"opening_prayer" validate:"omitempty,max=100"`
	ClosingPrayer string `json:"closing_prayer" validate:"omitempty,max=100"`
}

func (c *PioneerTalkRequest) ToModel(date time.Time, user string) model.PioneerTalk {
	return model.PioneerTalk{
		ID:            uuid.NewString(),
		Year:          c.Year,
		Date:          date,
		Speaker1:      c.Speaker1,
		Speaker2:      c.Speaker2,
		OpeningPrayer: c.OpeningPrayer,
		ClosingPrayer: c.ClosingPrayer,
		CreatedAt:     timezone.Now(),
		CreatedBy:     user,
		ModifiedAt:    timezone.Now(),
		ModifiedBy:    user,
	}
}

type SpecialTalkRequest struct {
	Year             int    `json:"year"              validate:"required,gte=2000,lte=2100"`
	Date             string `json:"date"              validate:"required,datetime=2006-01-02"`
	President        string `json:"president"         validate:"omitempty,max=100"`
	Speaker          string `json:"speaker"           validate:"required,max=100"`
	AuxiliarySpeaker string `json:"auxiliary_speaker" validate:"omitempty,max=100"`
	ClosingPrayer    string `json:"closing_prayer"    validate:"omitempty,max=100"`
}

func (c *SpecialTalkRequest) ToModel(date time.Time, user string) model.SpecialTalk {
	return model.SpecialTalk{
		ID:               uuid.NewString(),
		Year:             c.Year,
		Date:             date,
		President:        c.President,
		Speaker:          c.Speaker,
		AuxiliarySpeaker: c.AuxiliarySpeaker,
		ClosingPrayer:    c.ClosingPrayer,
		CreatedAt:        timezone.Now(),
		CreatedBy:        user,
		ModifiedAt:       timezone.Now(),
		ModifiedBy:       user,
	}
}

type MemorialRequest struct {
	Year          int    `json:"year"           validate:"required,gte=2000,lte=2100"`
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	President     string `json:"president"      validate:"omitempty,max=100"`
	OpeningPrayer string `json:"opening_prayer" validate:"omitempty,max=100"`
	Speaker       string `json:"speaker"        validate:"required,max=100"`
	BreadPrayer   string `json:"bread_prayer"   validate:"omitempty,max=100"`
	WinePrayer    string `json:"wine_prayer"    validate:"omitempty,max=100"`
}

func (c *MemorialRequest) ToModel(date time.Time, user string) model.Memorial {
	return model.Memorial{
		ID:            uuid.NewString(),
		Year:          c.Year,
		Date:          date,
		President:     c.President,
		OpeningPrayer: c.OpeningPrayer,
		Speaker:       c.Speaker,
		BreadPrayer:   c.BreadPrayer,
		WinePrayer:    c.WinePrayer,
		CreatedAt:     timezone.Now(),
		CreatedBy:     user,
		ModifiedAt:    timezone.Now(),
		ModifiedBy:    user,
	}
}

type PioneerTalkResponse struct {
	ID            string `json:"id"`
	Year          int    `json:"year"`
	Date          string `json:"date"`
	Speaker1      string `json:"speaker_1"`
	Speaker2      string `json:"speaker_2,omitempty"`
	OpeningPrayer string `json:"opening_prayer,omitempty"`
	ClosingPrayer string `json:"closing_prayer,omitempty"`
}

func (r *PioneerTalkResponse) FromModel(model model.PioneerTalk) {
	r.ID = model.ID
	r.Year = model.Year
	r.Date = model.Date.Format(constant.CalendarDateFormat)
	r.Speaker1 = model.Speaker1
	r.Speaker2 = model.Speaker2
	r.OpeningPrayer = model.OpeningPrayer
	r.ClosingPrayer = model.ClosingPrayer
}

type GetPioneerTalksResponse struct {
	Talks []PioneerTalkResponse `json:"talks"`
}

func (r *GetPioneerTalksResponse) FromModels(models []model.PioneerTalk) {
	r.Talks = make([]PioneerTalkResponse, len(models))
	for i, mod := range models {
		r.Talks[i].FromModel(mod)
	}
}

type SpecialTalkResponse struct {
	ID               string `json:"id"`
	Year             int    `json:"year"`
	Date             string `json:"date"`
	President        string `json:"president,omitempty"`
	Speaker          string `json:"speaker"`
	AuxiliarySpeaker string `json:"auxiliary_speaker,omitempty"`
	ClosingPrayer    string `json:"closing_prayer,omitempty"`
}

func (r *SpecialTalkResponse) FromModel(model model.SpecialTalk) {
	r.ID = model.ID
	r.Year = model.Year
	r.Date = model.Date.Format(constant.CalendarDateFormat)
	r.President = model.President
	r.Speaker = model.Speaker
	r.AuxiliarySpeaker = model.AuxiliarySpeaker
	r.ClosingPrayer = model.ClosingPrayer
}

type GetSpecialTalksResponse struct {
	Talks []SpecialTalkResponse `json:"talks"`
}

func (r *GetSpecialTalksResponse) FromModels(models []model.SpecialTalk) {
	r.Talks = make([]SpecialTalkResponse, len(models))
	for i, mod := range models {
		r.Talks[i].FromModel(mod)
	}
}

type MemorialResponse struct {
	ID            string `json:"id"`
	Year          int    `json:"year"`
	Date          string `json:"date"`
	President     string `json:"president,omitempty"`
	OpeningPrayer string `json:"opening_prayer,omitempty"`
	Speaker       string `json:"speaker"`
	BreadPrayer   string `json:"bread_prayer,omitempty"`
	WinePrayer    string `json:"wine_prayer,omitempty"`
}

func (r *MemorialResponse) FromModel(model model.Memorial) {
	r.ID = model.ID
	r.Year = model.Year
	r.Date = model.Date.Format(constant.CalendarDateFormat)
	r.President = model.President
	r.OpeningPrayer = model.OpeningPrayer
	r.Speaker = model.Speaker
	r.BreadPrayer = model.BreadPrayer
	r.WinePrayer = model.WinePrayer
}

type GetMemorialsResponse struct {
	Memorials []MemorialResponse `json:"memorials"`
}

func (r *GetMemorialsResponse) FromModels(models []model.Memorial) {
	r.Memorials = make([]MemorialResponse, len(models))
	for i, mod := range models {
		r.Memorials[i].FromModel(mod)
	}
}
