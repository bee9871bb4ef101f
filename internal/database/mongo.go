package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/config"
)

const mongoConnectTimeout = 10 * time.Second

// ConnectMongo opens a MongoDB client and returns the configured database.
func ConnectMongo(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI).SetRetryWrites(true)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("connected to MongoDB", zap.String("database", cfg.Database))
	return client.Database(cfg.Database), nil
}
