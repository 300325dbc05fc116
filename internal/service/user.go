// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/showsapi/showsapi/internal/cache"
	"github.com/showsapi/showsapi/internal/metrics"
	"github.com/showsapi/showsapi/internal/model"
)

// UserStore is the persistence contract for user documents.
type UserStore interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	InsertOne(ctx context.Context, user *model.User) error
	InsertMany(ctx context.Context, users []*model.User) error
	DeleteAll(ctx context.Context) (int64, error)
}

// UserListCache caches the result of listing users.
type UserListCache interface {
	GetUsers(ctx context.Context) ([]*model.User, error)
	SetUsers(ctx context.Context, users []*model.User) error
	InvalidateUsers(ctx context.Context) error
}

// UserService handles user business logic.
type UserService struct {
	store   UserStore
	cache   UserListCache
	metrics metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time

	// writes is bumped before every cache invalidation. A list read that
	// overlaps a write does not fill the cache.
	writes atomic.Uint64
}

// NewUserService creates a new UserService. listCache may be nil.
func NewUserService(store UserStore, listCache UserListCache, recorder metrics.Recorder, logger *slog.Logger) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		store:   store,
		cache:   listCache,
		metrics: recorder,
		logger:  logger,
		now:     time.Now,
	}
}

// ListUsers returns every stored user.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	if s.cache != nil {
		users, err := s.cache.GetUsers(ctx)
		if err == nil {
			s.metrics.IncUsersListCacheHit()
			return users, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("users_cache_read_failed", "error", err)
		}
		s.metrics.IncUsersListCacheMiss()
	}

	gen := s.writes.Load()

	users, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, classify(err)
	}

	if s.cache != nil {
		s.fillCache(ctx, gen, users)
	}

	return users, nil
}

// CreateUser validates the input and persists a new user.
func (s *UserService) CreateUser(ctx context.Context, input model.UserInput) (*model.User, error) {
	user, err := model.NewUser(input, s.now())
	if err != nil {
		s.metrics.IncUserCreateFailed(metrics.KindValidation)
		return nil, err
	}

	if err := s.store.InsertOne(ctx, user); err != nil {
		err = classify(err)
		s.metrics.IncUserCreateFailed(failureKind(err))
		return nil, err
	}

	s.invalidate(ctx)
	s.metrics.IncUserCreated()

	return user, nil
}

// SeedUsers replaces every stored user with the fixed sample set.
// The delete and insert phases are not isolated from concurrent requests.
func (s *UserService) SeedUsers(ctx context.Context) ([]*model.User, error) {
	now := s.now()
	samples := model.SampleUsers()

	users := make([]*model.User, 0, len(samples))
	for _, in := range samples {
		u, err := model.NewUser(in, now)
		if err != nil {
			return nil, fmt.Errorf("invalid sample user %s: %w", in.Email, err)
		}
		users = append(users, u)
	}

	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return nil, classify(err)
	}

	// Runs again after the insert, whatever its outcome, so a list read
	// between delete and insert cannot stay cached.
	s.invalidate(ctx)
	defer s.invalidate(ctx)

	if err := s.store.InsertMany(ctx, users); err != nil {
		return nil, classify(err)
	}

	s.metrics.IncUsersSeeded(len(users))
	s.logger.Info("users_seeded", "deleted", deleted, "inserted", len(users))

	return users, nil
}

// fillCache stores users read at generation gen unless a write happened since.
func (s *UserService) fillCache(ctx context.Context, gen uint64, users []*model.User) {
	if s.writes.Load() != gen {
		return
	}
	if err := s.cache.SetUsers(ctx, users); err != nil {
		s.logger.Warn("users_cache_write_failed", "error", err)
		return
	}
	// A write that slipped in between the check and the set is undone here.
	if s.writes.Load() != gen {
		s.invalidate(ctx)
	}
}

func (s *UserService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.writes.Add(1)
	if err := s.cache.InvalidateUsers(ctx); err != nil {
		s.logger.Warn("users_cache_invalidate_failed", "error", err)
	}
}
