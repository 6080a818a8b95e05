package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"atrium/infras/mongo"
	"atrium/infras/otel"
	"atrium/internal/domains/setting/model"
	"atrium/shared/constant"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Setting interface {
	Get(ctx context.Context) (model.Settings, error)
	Set(ctx context.Context, settings model.Settings) error
}

type repositoryImpl struct {
	settings *mongoDriver.Collection
	otel     otel.Otel
}

func New(conn *mongo.Connection, otel otel.Otel) Setting {
	return &repositoryImpl{
		settings: conn.Database.Collection(model.CollectionSettings),
		otel:     otel,
	}
}

// Get returns the zero value when the settings document has never been
// written.
func (repo *repositoryImpl) Get(ctx context.Context) (settings model.Settings, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".settings.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.settings.FindOne(ctx, bson.M{"_id": model.SettingsID}).Decode(&settings)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model.Settings{}, nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (repo *repositoryImpl) Set(ctx context.Context, settings model.Settings) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".settings.Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	opts := options.Replace().SetUpsert(true)

	if _, err = repo.settings.ReplaceOne(ctx, bson.M{"_id": model.SettingsID}, settings, opts); err != nil {
		log.Error().Err(err).Msg("failed to set settings")

		return fmt.Errorf("failed to set settings: %w", err)
	}

	return nil
}
