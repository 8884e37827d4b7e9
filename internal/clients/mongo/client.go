package mongo

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"weather-api/internal/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const connectTimeout = 10 * time.Second

// Client owns the process-wide MongoDB connection. Build one in main and hand it to
// the repositories; there is no package-level handle.
type Client struct {
	drv driver

	mu  sync.Mutex
	cli *mongo.Client
	db  *mongo.Database
}

// Connect opens the connection described by cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg config.Config, log *slog.Logger) (*Client, error) {
	return connect(ctx, cfg, log, mongoDriver{})
}

func connect(ctx context.Context, cfg config.Config, log *slog.Logger, drv driver) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(connectTimeout).
		SetAppName("weather-api")

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	cli, err := drv.Connect(ctx, opts)
	if err != nil {
		log.Error("failed to connect to mongo", "error", err)
		return nil, err
	}

	if err := drv.Ping(ctx, cli); err != nil {
		log.Error("failed to ping mongo", "error", err)
		if dErr := drv.Disconnect(context.Background(), cli); dErr != nil {
			log.Warn("failed to release mongo client", "error", dErr)
		}
		return nil, err
	}

	log.Info("successfully connected to mongo", "db", cfg.MongoDBName)

	return &Client{
		drv: drv,
		cli: cli,
		db:  cli.Database(cfg.MongoDBName),
	}, nil
}

// DB returns the configured database.
func (c *Client) DB() *mongo.Database {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db
}

// ErrClosed is returned by Ping after Disconnect.
var ErrClosed = errors.New("mongo client is closed")

// Ping checks the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.Lock()
	cli := c.cli
	c.mu.Unlock()
	if cli == nil {
		return ErrClosed
	}

	ctx, cancel := WithRepoTimeout(ctx, OpTimeout)
	defer cancel()
	return c.drv.Ping(ctx, cli)
}

// Disconnect closes the connection. Safe to call more than once.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cli == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	err := c.drv.Disconnect(ctx, c.cli)
	c.cli = nil
	c.db = nil
	return err
}
