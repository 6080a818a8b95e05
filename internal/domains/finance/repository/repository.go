package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"atrium/infras/mongo"
	"atrium/infras/otel"
	"atrium/internal/domains/finance/model"
	"atrium/shared/constant"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Finance interface {
	InsertTransaction(ctx context.Context, transaction model.Transaction) error
	InsertTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransaction(ctx context.Context, id string) (model.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, fields bson.M) error
	MarkTransactionsSent(ctx context.Context, ids []string) error
	DeleteTransaction(ctx context.Context, id string) error
	GetResolutions(ctx context.Context) ([]model.Resolution, error)
	InsertResolution(ctx context.Context, resolution model.Resolution) error
	UpdateResolution(ctx context.Context, id string, fields bson.M) error
	DeleteResolution(ctx context.Context, id string) error
}

type repositoryImpl struct {
	transactions *mongoDriver.Collection
	resolutions  *mongoDriver.Collection
	otel         otel.Otel
}

func New(conn *mongo.Connection, otel otel.Otel) Finance {
	return &repositoryImpl{
		transactions: conn.Database.Collection(model.CollectionTransactions),
		resolutions:  conn.Database.Collection(model.CollectionResolutions),
		otel:         otel,
	}
}

func (repo *repositoryImpl) InsertTransaction(ctx context.Context, transaction model.Transaction) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.transactions.InsertOne(ctx, transaction); err != nil {
		log.Error().Err(err).Msg("failed to insert transaction")

		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) InsertTransactions(ctx context.Context, transactions []model.Transaction) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.InsertBulk")
	defer scope.End()
	defer scope.TraceIfError(err)

	documents := make([]any, len(transactions))
	for i, transaction := range transactions {
		documents[i] = transaction
	}

	if _, err = repo.transactions.InsertMany(ctx, documents); err != nil {
		log.Error().Err(err).Msg("failed to insert transactions")

		return fmt.Errorf("failed to insert transactions: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetTransaction(ctx context.Context, id string) (transaction model.Transaction, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.transactions.FindOne(ctx, bson.M{"_id": id}).Decode(&transaction)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model.Transaction{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get transaction")

		return model.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	return transaction, nil
}

func (repo *repositoryImpl) GetAllTransactions(ctx context.Context) (transactions []model.Transaction, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := repo.transactions.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to find transactions")

		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &transactions); err != nil {
		log.Error().Err(err).Msg("failed to decode transactions")

		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return transactions, nil
}

func (repo *repositoryImpl) UpdateTransaction(ctx context.Context, id string, fields bson.M) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.transactions.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update transaction")

		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) MarkTransactionsSent(ctx context.Context, ids []string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.MarkSent")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"status": model.StatusSent}}

	if _, err = repo.transactions.UpdateMany(ctx, filter, update); err != nil {
		log.Error().Err(err).Msg("failed to mark transactions sent")

		return fmt.Errorf("failed to mark transactions sent: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteTransaction(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.transactions.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete transaction")

		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetResolutions(ctx context.Context) (resolutions []model.Resolution, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resolution.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})

	cursor, err := repo.resolutions.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to find resolutions")

		return nil, fmt.Errorf("failed to find resolutions: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &resolutions); err != nil {
		log.Error().Err(err).Msg("failed to decode resolutions")

		return nil, fmt.Errorf("failed to decode resolutions: %w", err)
	}

	return resolutions, nil
}

func (repo *repositoryImpl) InsertResolution(ctx context.Context, resolution model.Resolution) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resolution.Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.resolutions.InsertOne(ctx, resolution); err != nil {
		log.Error().Err(err).Msg("failed to insert resolution")

		return fmt.Errorf("failed to insert resolution: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) UpdateResolution(ctx context.Context, id string, fields bson.M) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resolution.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.resolutions.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update resolution")

		return fmt.Errorf("failed to update resolution: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteResolution(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resolution.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = repo.resolutions.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete resolution")

		return fmt.Errorf("failed to delete resolution: %w", err)
	}

	return nil
}
