// Package mongodb manages the shared document-store connection.
// The returned handles are pooled and safe for concurrent use; they are
// created once at startup and injected into every store constructor.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/taskward/taskward-api/internal/config"
)

// Connect establishes a connection to the document store and verifies it
// with a ping bounded by the configured timeout. It returns the client
// (for shutdown and health checks) and the application database handle.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		// Best-effort cleanup; the ping failure is the error that matters.
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}
