package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	appconfig "github.com/Shubham126710/products-api/internal/config"
)

// Connect establishes a MongoDB connection using the provided configuration.
// It applies a small retry strategy to handle transient bootstrapping issues
// (e.g., database container starting up). The returned handle has pool
// settings pre-configured and is pinged before returning.
func Connect(cfg *appconfig.MongoConfig) (*mongo.Database, error) {
	if cfg == nil {
		return nil, errors.New("nil mongo config")
	}

	// Retry policy: up to 5 attempts, exponential backoff starting at 500ms.
	const (
		maxAttempts = 5
		baseDelay   = 500 * time.Millisecond
	)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		client, err := mongo.Connect(ctx, clientOptions(cfg.URI))
		if err == nil {
			// Ping to validate the connection before handing it out.
			err = client.Ping(ctx, readpref.Primary())
			if err == nil {
				cancel()
				return client.Database(cfg.Database), nil
			}
			_ = client.Disconnect(ctx)
		}
		cancel()

		lastErr = err
		sleepWithBackoff(attempt, baseDelay)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxAttempts, lastErr)
}

// clientOptions configures the connection pool for the client.
func clientOptions(uri string) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute)
}

// sleepWithBackoff sleeps for an exponentially increasing duration.
func sleepWithBackoff(attempt int, base time.Duration) {
	// Simple exponential backoff: base * 2^(attempt-1), capped to 5s.
	d := base << (attempt - 1)
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	time.Sleep(d)
}
