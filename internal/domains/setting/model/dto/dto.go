package dto

import "atrium/internal/domains/setting/model"

type UpdateSettingsRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type SettingsResponse struct {
	Name string `json:"name"`
}

func (r *SettingsResponse) FromModel(model model.Settings) {
	r.Name = model.Name
}
