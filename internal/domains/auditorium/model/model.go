package model

import "atrium/shared/model"

const (
	TableName  = "auditoriums"
	EntityName = "auditorium"

	FieldID    = "id"
	FieldName  = "name"
	FieldColor = "color"
)

type Auditorium struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Color string `db:"color"`
	model.Metadata
}
