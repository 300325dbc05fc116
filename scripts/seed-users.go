// Command seed-users replaces every stored user with the sample set without
// going through the HTTP API. Useful for resetting a local or staging store.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/showsapi/showsapi/internal/cache"
	"github.com/showsapi/showsapi/internal/model"
	"github.com/showsapi/showsapi/internal/repository"
	"github.com/showsapi/showsapi/internal/service"
)

type output struct {
	Driver           string        `json:"driver"`
	CacheInvalidated bool          `json:"cache_invalidated"`
	Count            int           `json:"count"`
	Users            []*model.User `json:"users"`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("seed-users", flag.ContinueOnError)
	var (
		driver        = fs.String("driver", envOr("STORE_DRIVER", repository.DriverMongo), "Store driver: mongo or postgres")
		mongoURI      = fs.String("mongodb-uri", envOr("MONGODB_URI", "mongodb://localhost:27017"), "MongoDB connection string")
		mongoDatabase = fs.String("mongodb-database", envOr("MONGODB_DATABASE", "shows"), "MongoDB database name")
		databaseURL   = fs.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		redisURL      = fs.String("redis-url", os.Getenv("REDIS_URL"), "Redis URL; when set the cached user list is invalidated")
		format        = fs.String("format", "plain", "Output format: plain or json")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	outFormat := strings.ToLower(*format)
	if outFormat != "plain" && outFormat != "json" {
		return fmt.Errorf("invalid format %q; use plain or json", *format)
	}
	if *driver == repository.DriverMemory {
		return errors.New("the memory driver has nothing to seed outside the server process")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store, err := repository.Open(ctx, repository.Options{
		Driver:        *driver,
		MongoURI:      *mongoURI,
		MongoDatabase: *mongoDatabase,
		DatabaseURL:   *databaseURL,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close(context.Background())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users, err := service.NewUserService(store, nil, nil, logger).SeedUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	invalidated := false
	if *redisURL != "" {
		c, err := cache.New(ctx, *redisURL, cache.DefaultUsersTTL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer c.Close()
		if err := c.InvalidateUsers(ctx); err != nil {
			return fmt.Errorf("invalidate cached users: %w", err)
		}
		invalidated = true
	}

	return writeOutput(stdout, outFormat, output{Driver: *driver, CacheInvalidated: invalidated, Count: len(users), Users: users})
}

func writeOutput(w io.Writer, format string, out output) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, u := range out.Users {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", u.ID, u.Email, u.Name, u.Age); err != nil {
			return err
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
