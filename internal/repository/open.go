package repository

import (
	"context"
	"fmt"

	"github.com/showsapi/showsapi/internal/model"
)

// Store is the full contract shared by every driver.
type Store interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	InsertOne(ctx context.Context, user *model.User) error
	InsertMany(ctx context.Context, users []*model.User) error
	DeleteAll(ctx context.Context) (int64, error)
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Options selects and configures a driver.
type Options struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
}

// URL returns the connection string used by the selected driver.
func (o Options) URL() string {
	switch o.Driver {
	case DriverMongo:
		return o.MongoURI
	case DriverPostgres:
		return o.DatabaseURL
	default:
		return ""
	}
}

// Open connects the selected driver and prepares its schema.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)

	switch opts.Driver {
	case DriverMongo:
		var r *MongoRepository
		r, err = NewMongo(ctx, opts.MongoURI, opts.MongoDatabase)
		if err == nil {
			store = r
		}
	case DriverPostgres:
		var r *PostgresRepository
		r, err = NewPostgres(ctx, opts.DatabaseURL)
		if err == nil {
			store = r
		}
	case DriverMemory:
		store = NewMemory()
	default:
		return nil, fmt.Errorf("unsupported store driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("prepare %s schema: %w", opts.Driver, err)
	}
	return store, nil
}
