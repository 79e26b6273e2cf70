package database

import (
	"context"
	"fmt"
	"time"

	"github.com/seva-mitra/core/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const serverSelectionTimeout = 5 * time.Second

// DB is the global database handle, acquired once at startup and held
// for process lifetime. The driver multiplexes connections internally.
var DB *mongo.Database

// Connect opens the MongoDB connection and verifies connectivity.
func Connect(cfg *config.AppConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.Database.URIValue()).
		SetServerSelectionTimeout(serverSelectionTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), serverSelectionTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := client.Database(cfg.Database.DatabaseName())
	DB = db
	return db, nil
}

// Disconnect tears down the connection on process exit.
func Disconnect(db *mongo.Database) error {
	if db == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), serverSelectionTimeout)
	defer cancel()
	return db.Client().Disconnect(ctx)
}
