package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/showsapi/showsapi/internal/model"
)

// PostgresSchema creates the users document table. Safe to run repeatedly.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	doc        JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users ((doc->>'email'));
`

const (
	insertUserQuery = `INSERT INTO users (id, doc, created_at) VALUES ($1, $2, $3)`

	// uniqueViolation is the PostgreSQL error code for unique_violation.
	uniqueViolation = "23505"
)

// pgDocument is the JSONB shape of a user row.
type pgDocument struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostgresRepository stores users as JSONB documents in PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgresRepository with a connection pool.
func NewPostgres(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// EnsureSchema creates the users table and its unique email index.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("failed to create users schema: %w", err)
	}
	return nil
}

// FindAll returns every user ordered by insertion time.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, doc FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, storeError("find users", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.User, error) {
		var (
			id  string
			raw []byte
		)
		if err := row.Scan(&id, &raw); err != nil {
			return nil, err
		}

		var doc pgDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode user %s: %w", id, err)
		}

		return &model.User{
			ID:        id,
			Name:      doc.Name,
			Email:     doc.Email,
			Age:       doc.Age,
			CreatedAt: doc.CreatedAt.UTC(),
			UpdatedAt: doc.UpdatedAt.UTC(),
		}, nil
	})
	if err != nil {
		return nil, storeError("scan users", err)
	}

	return users, nil
}

// InsertOne persists a user and sets its ID.
func (r *PostgresRepository) InsertOne(ctx context.Context, user *model.User) error {
	id := ulid.Make().String()

	doc, err := encodeDocument(user)
	if err != nil {
		return storeError("encode user", err)
	}

	if _, err := r.pool.Exec(ctx, insertUserQuery, id, doc, user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return storeError("insert user", err)
	}

	user.ID = id
	return nil
}

// InsertMany persists users in order and stops at the first failure.
// Each row is its own statement, so users inserted before the failure stay
// persisted, as with the mongo driver's ordered insert.
func (r *PostgresRepository) InsertMany(ctx context.Context, users []*model.User) error {
	for _, u := range users {
		if err := r.InsertOne(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll removes every user and returns how many were deleted.
func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, storeError("delete users", err)
	}
	return tag.RowsAffected(), nil
}

// Ping checks database connectivity.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (r *PostgresRepository) Close(_ context.Context) error {
	r.pool.Close()
	return nil
}

// Pool returns the underlying connection pool.
// Use sparingly - prefer adding methods to PostgresRepository.
func (r *PostgresRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func encodeDocument(u *model.User) ([]byte, error) {
	return json.Marshal(pgDocument{
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
