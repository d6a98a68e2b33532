package mongo

import (
	"context"
	"fmt"
	"log/slog"

	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the driver client together with the selected database handle.
// It is opened once at process start and shared across requests.
type Client struct {
	client *driver.Client
	db     *driver.Database
}

// Connect validates the URL and constructs the client. The driver dials
// lazily, so an unreachable deployment does not fail here: reachability
// surfaces in Initialize and the readiness probe, and the server boots
// either way.
func Connect(ctx context.Context, url, dbName string) (*Client, error) {
	client, err := driver.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	return &Client{client: client, db: client.Database(dbName)}, nil
}

// Database exposes the selected database for route collaborators.
func (c *Client) Database() *driver.Database {
	return c.db
}

// Ping reports connectivity. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}
	return nil
}

// Initialize is the startup routine handed to the lifecycle. It re-verifies
// connectivity after boot; collection and index setup belongs to the route
// collaborators that own the data.
func (c *Client) Initialize(ctx context.Context) error {
	if err := c.Ping(ctx); err != nil {
		return err
	}
	slog.Info("MongoDB ready", "database", c.db.Name())
	return nil
}

// Close disconnects the underlying connection pool.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close MongoDB connection: %w", err)
	}
	return nil
}
