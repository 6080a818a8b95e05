package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"atrium/infras/mongo"
	"atrium/infras/otel"
	"atrium/internal/domains/request/model"
	"atrium/shared/constant"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Request interface {
	Insert(ctx context.Context, request model.Request) error
	Get(ctx context.Context, id string) (model.Request, error)
	GetAll(ctx context.Context) ([]model.Request, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	requests *mongoDriver.Collection
	otel     otel.Otel
}

func New(conn *mongo.Connection, otel otel.Otel) Request {
	return &repositoryImpl{
		requests: conn.Database.Collection(model.CollectionRequests),
		otel:     otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, request model.Request) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".request.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.requests.InsertOne(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to insert request")

		return fmt.Errorf("failed to insert request: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (request model.Request, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".request.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.requests.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model.Request{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get request")

		return model.Request{}, fmt.Errorf("failed to get request: %w", err)
	}

	return request, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) (requests []model.Request, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".request.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	opts := options.Find().SetSort(bson.D{{Key: "request_date", Value: -1}})

	cursor, err := repo.requests.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return nil, fmt.Errorf("failed to get requests: %w", err)
	}

	if err = cursor.All(ctx, &requests); err != nil {
		log.Error().Err(err).Msg("failed to decode requests")

		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}

	return requests, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, id string, fields bson.M) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".request.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.requests.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update request")

		return fmt.Errorf("failed to update request: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".request.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.requests.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete request")

		return fmt.Errorf("failed to delete request: %w", err)
	}

	return nil
}
