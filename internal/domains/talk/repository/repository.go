package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"atrium/infras/mongo"
	"atrium/infras/otel"
	"atrium/internal/domains/talk/model"
	"atrium/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Talk interface {
	InsertPioneerTalk(ctx context.Context, talk model.PioneerTalk) error
	GetPioneerTalks(ctx context.Context) ([]model.PioneerTalk, error)
	UpdatePioneerTalk(ctx context.Context, id string, fields bson.M) error
	DeletePioneerTalk(ctx context.Context, id string) error
	InsertSpecialTalk(ctx context.Context, talk model.SpecialTalk) error
	GetSpecialTalks(ctx context.Context) ([]model.SpecialTalk, error)
	UpdateSpecialTalk(ctx context.Context, id string, fields bson.M) error
	DeleteSpecialTalk(ctx context.Context, id string) error
	InsertMemorial(ctx context.Context, memorial model.Memorial) error
	GetMemorials(ctx context.Context) ([]model.Memorial, error)
	UpdateMemorial(ctx context.Context, id string, fields bson.M) error
	DeleteMemorial(ctx context.Context, id string) error
}

type repositoryImpl struct {
	pioneerTalks *mongoDriver.Collection
	specialTalks *mongoDriver.Collection
	memorials    *mongoDriver.Collection
	otel         otel.Otel
}

func New(conn *mongo.Connection, otel otel.Otel) Talk {
	return &repositoryImpl{
		pioneerTalks: conn.Database.Collection(model.CollectionPioneerTalks),
		specialTalks: conn.Database.Collection(model.CollectionSpecialTalks),
		memorials:    conn.Database.Collection(model.CollectionMemorials),
		otel:         otel,
	}
}

// Yearly programmes are listed newest first.
func sortByYearDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "year", Value: -1}})
}

func (repo *repositoryImpl) InsertPioneerTalk(ctx context.Context, talk model.PioneerTalk) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pioneerTalk.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.pioneerTalks.InsertOne(ctx, talk); err != nil {
		log.Error().Err(err).Msg("failed to insert pioneer talk")

		return fmt.Errorf("failed to insert pioneer talk: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetPioneerTalks(ctx context.Context) (talks []model.PioneerTalk, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pioneerTalk.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cursor, err := repo.pioneerTalks.Find(ctx, bson.M{}, sortByYearDesc())
	if err != nil {
		log.Error().Err(err).Msg("failed to get pioneer talks")

		return nil, fmt.Errorf("failed to get pioneer talks: %w", err)
	}

	if err = cursor.All(ctx, &talks); err != nil {
		log.Error().Err(err).Msg("failed to decode pioneer talks")

		return nil, fmt.Errorf("failed to decode pioneer talks: %w", err)
	}

	return talks, nil
}

func (repo *repositoryImpl) UpdatePioneerTalk(ctx context.Context, id string, fields bson.M) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pioneerTalk.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.pioneerTalks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update pioneer talk")

		return fmt.Errorf("failed to update pioneer talk: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) DeletePioneerTalk(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pioneerTalk.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.pioneerTalks.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete pioneer talk")

		return fmt.Errorf("failed to delete pioneer talk: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) InsertSpecialTalk(ctx context.Context, talk model.SpecialTalk) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".specialTalk.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.specialTalks.InsertOne(ctx, talk); err != nil {
		log.Error().Err(err).Msg("failed to insert special talk")

		return fmt.Errorf("failed to insert special talk: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetSpecialTalks(ctx context.Context) (talks []model.SpecialTalk, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".specialTalk.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cursor, err := repo.specialTalks.Find(ctx, bson.M{}, sortByYearDesc())
	if err != nil {
		log.Error().Err(err).Msg("failed to get special talks")

		return nil, fmt.Errorf("failed to get special talks: %w", err)
	}

	if err = cursor.All(ctx, &talks); err != nil {
		log.Error().Err(err).Msg("failed to decode special talks")

		return nil, fmt.Errorf("failed to decode special talks: %w", err)
	}

	return talks, nil
}

func (repo *repositoryImpl) UpdateSpecialTalk(ctx context.Context, id string, fields bson.M) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".specialTalk.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.specialTalks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update special talk")

		return fmt.Errorf("failed to update special talk: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteSpecialTalk(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".specialTalk.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.specialTalks.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete special talk")

		return fmt.Errorf("failed to delete special talk: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) InsertMemorial(ctx context.Context, memorial model.Memorial) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memorial.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.memorials.InsertOne(ctx, memorial); err != nil {
		log.Error().Err(err).Msg("failed to insert memorial")

		return fmt.Errorf("failed to insert memorial: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetMemorials(ctx context.Context) (memorials []model.Memorial, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memorial.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cursor, err := repo.memorials.Find(ctx, bson.M{}, sortByYearDesc())
	if err != nil {
		log.Error().Err(err).Msg("failed to get memorials")

		return nil, fmt.Errorf("failed to get memorials: %w", err)
	}

	if err = cursor.All(ctx, &memorials); err != nil {
		log.Error().Err(err).Msg("failed to decode memorials")

		return nil, fmt.Errorf("failed to decode memorials: %w", err)
	}

	return memorials, nil
}

func (repo *repositoryImpl) UpdateMemorial(ctx context.Context, id string, fields bson.M) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memorial.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.memorials.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update memorial")

		return fmt.Errorf("failed to update memorial: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteMemorial(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memorial.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.memorials.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete memorial")

		return fmt.Errorf("failed to delete memorial: %w", err)
	}

	return nil
}
