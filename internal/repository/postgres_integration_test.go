//go:build integration

package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showsapi/showsapi/internal/model"
	"github.com/showsapi/showsapi/internal/testutil"
)

// resetPostgresSchema drops and recreates the users table over database/sql
// so the suite does not depend on the repository under test.
func resetPostgresSchema(t *testing.T, databaseURL string) {
	t.Helper()

	db, err := sql.Open("postgres", databaseURL)
	require.NoError(t, err, "open database")
	defer db.Close()

	_, err = db.Exec(`DROP TABLE IF EXISTS users`)
	require.NoError(t, err, "drop users")

	_, err = db.Exec(PostgresSchema)
	require.NoError(t, err, "create users")
}

func newPostgresTestEnv(t *testing.T) (context.Context, *PostgresRepository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")
	resetPostgresSchema(t, dbURL)

	repo, err := NewPostgres(ctx, dbURL)
	require.NoError(t, err, "connect db")
	t.Cleanup(func() { _ = repo.Close(ctx) })

	require.NoError(t, repo.EnsureSchema(ctx))
	return ctx, repo
}

func TestIntegrationPostgresRepository_InsertAndFind(t *testing.T) {
	ctx, repo := newPostgresTestEnv(t)

	first := testutil.NewTestUser(t, "first@example.com")
	second := testutil.NewTestUser(t, "second@example.com")
	require.NoError(t, repo.InsertOne(ctx, first))
	require.NoError(t, repo.InsertOne(ctx, second))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.Email, all[1].Email)
}

func TestIntegrationPostgresRepository_DuplicateEmail(t *testing.T) {
	ctx, repo := newPostgresTestEnv(t)

	require.NoError(t, repo.InsertOne(ctx, testutil.NewTestUser(t, "dup@example.com")))

	err := repo.InsertOne(ctx, testutil.NewTestUser(t, "dup@example.com"))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestIntegrationPostgresRepository_InsertManyAndDeleteAll(t *testing.T) {
	ctx, repo := newPostgresTestEnv(t)

	batch := []*model.User{
		testutil.NewTestUser(t, "one@example.com"),
		testutil.NewTestUser(t, "two@example.com"),
		testutil.NewTestUser(t, "three@example.com"),
	}
	require.NoError(t, repo.InsertMany(ctx, batch))
	for _, u := range batch {
		assert.NotEmpty(t, u.ID)
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestIntegrationPostgresRepository_InsertManyKeepsEarlierRows(t *testing.T) {
	ctx, repo := newPostgresTestEnv(t)

	require.NoError(t, repo.InsertOne(ctx, testutil.NewTestUser(t, "taken@example.com")))

	batch := []*model.User{
		testutil.NewTestUser(t, "first@example.com"),
		testutil.NewTestUser(t, "taken@example.com"),
		testutil.NewTestUser(t, "never@example.com"),
	}
	err := repo.InsertMany(ctx, batch)
	require.ErrorIs(t, err, ErrEmailExists)
	assert.NotEmpty(t, batch[0].ID)
	assert.Empty(t, batch[2].ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)

	emails := make([]string, 0, len(all))
	for _, u := range all {
		emails = append(emails, u.Email)
	}
	assert.ElementsMatch(t, []string{"taken@example.com", "first@example.com"}, emails)
}
