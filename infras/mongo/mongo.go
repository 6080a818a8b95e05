package mongo

import (
	"atrium/config"
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultConnectTimeoutSeconds = 10

// Connection wraps the document database handle shared by the document-store
// domains (finance, requests, talks, settings).
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func New(config *config.Config) *Connection {
	timeout := config.DB.Mongo.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeoutSeconds
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.DB.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
	}

	log.Info().Str("database", config.DB.Mongo.Database).Msg("Connected to MongoDB")

	return &Connection{
		Client:   client,
		Database: client.Database(config.DB.Mongo.Database),
	}
}
