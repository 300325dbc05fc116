package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/showsapi/showsapi/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// NewTestUser creates a valid, not yet persisted user with the given email.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	return &model.User{
		Name:      "Test User",
		Email:     email,
		Age:       30,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestUserInput returns candidate fields that pass validation.
func NewTestUserInput(t testing.TB, email string) model.UserInput {
	t.Helper()
	age := 30
	return model.UserInput{Name: "Test User", Email: email, Age: &age}
}

// UniqueEmail generates a unique email address for tests.
// Safe for concurrent use.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, strings.ToLower(ulid.Make().String()))
}
