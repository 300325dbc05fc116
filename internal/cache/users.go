package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/showsapi/showsapi/internal/model"
)

const (
	usersKey = "users:all"

	// DefaultUsersTTL is used when no positive TTL is configured.
	DefaultUsersTTL = 30 * time.Second
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetUsers returns the cached user list.
// Returns ErrCacheMiss if nothing is cached.
func (c *Cache) GetUsers(ctx context.Context) ([]*model.User, error) {
	raw, err := c.client.Get(ctx, usersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var users []*model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		// Corrupt entry, drop it so the next read repopulates.
		c.client.Del(ctx, usersKey)
		return nil, ErrCacheMiss
	}

	return users, nil
}

// SetUsers stores the user list.
func (c *Cache) SetUsers(ctx context.Context, users []*model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}

	if err := c.client.Set(ctx, usersKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache users: %w", err)
	}

	return nil
}

// InvalidateUsers removes the cached user list.
func (c *Cache) InvalidateUsers(ctx context.Context) error {
	if err := c.client.Del(ctx, usersKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate users: %w", err)
	}
	return nil
}
