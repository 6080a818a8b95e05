package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/auditorium/model"
	gDto "atrium/shared/dto"
	gRepo "atrium/shared/repository"
	"context"
)

type Auditorium interface {
	Insert(ctx context.Context, model model.Auditorium) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Auditorium, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Auditorium, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Auditorium]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Auditorium {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Auditorium](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
