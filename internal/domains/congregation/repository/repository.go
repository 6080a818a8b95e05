package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/congregation/model"
	gDto "atrium/shared/dto"
	gRepo "atrium/shared/repository"
	"context"
)

type Congregation interface {
	Insert(ctx context.Context, model model.Congregation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Congregation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Congregation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Congregation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Congregation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Congregation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
