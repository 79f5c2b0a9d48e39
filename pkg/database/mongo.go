package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gyd-platform/department-api/pkg/config"
)

// NewMongo returns a handle to the configured database. The client is
// created once at startup and held for the process lifetime; the driver
// manages its own connection pool and reconnects internally. Connection
// failures are not fatal here: callers keep serving and report the store
// as unavailable.
func NewMongo(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Database, error) {
	if !cfg.Configured() {
		return nil, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, err
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client.Database(cfg.Name), nil
}
