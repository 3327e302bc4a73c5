package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/config"
)

// MongoConnection represents a MongoDB connection.
// Note: mongo.Client is already thread-safe and manages its own connection
// pool, so no additional locking is layered on top of it.
type MongoConnection struct {
	client *mongo.Client
	dbName string
}

var (
	instance *MongoConnection
	once     sync.Once
	initErr  error
)

// GetInstance returns the singleton MongoDB connection. The configuration of
// the first caller wins; later calls return the already established client.
func GetInstance(cfg *config.Config) (*MongoConnection, error) {
	once.Do(func() {
		instance, initErr = newConnection(cfg)
	})
	return instance, initErr
}

// newConnection creates a new MongoDB connection
func newConnection(cfg *config.Config) (*MongoConnection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(100).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoConnection{client: client, dbName: cfg.MongoDatabase}, nil
}

// Collection returns a handle to the named collection in the configured database
func (c *MongoConnection) Collection(name string) *mongo.Collection {
	return c.client.Database(c.dbName).Collection(name)
}

// Database returns the underlying *mongo.Database
// This is useful for operations that need direct access to the database
func (c *MongoConnection) Database() *mongo.Database {
	return c.client.Database(c.dbName)
}

// Close disconnects the client
func (c *MongoConnection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
