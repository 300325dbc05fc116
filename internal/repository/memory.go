package repository

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/showsapi/showsapi/internal/model"
)

// MemoryRepository keeps users in process memory.
// Intended for local development and tests; data is lost on restart.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  []*model.User
	emails map[string]struct{}

	// Fail, when set, is returned as a StoreError from every operation.
	Fail error
}

// NewMemory creates an empty MemoryRepository.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{emails: make(map[string]struct{})}
}

// EnsureSchema is a no-op.
func (r *MemoryRepository) EnsureSchema(ctx context.Context) error {
	return nil
}

// FindAll returns copies of every user in insertion order.
func (r *MemoryRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Fail != nil {
		return nil, storeError("find users", r.Fail)
	}

	out := make([]*model.User, len(r.users))
	for i, u := range r.users {
		cp := *u
		out[i] = &cp
	}
	return out, nil
}

// InsertOne persists a user and sets its ID.
func (r *MemoryRepository) InsertOne(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Fail != nil {
		return storeError("insert user", r.Fail)
	}
	return r.insertLocked(user)
}

// InsertMany persists users in order and stops at the first failure.
func (r *MemoryRepository) InsertMany(ctx context.Context, users []*model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Fail != nil {
		return storeError("insert users", r.Fail)
	}
	for _, u := range users {
		if err := r.insertLocked(u); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryRepository) insertLocked(user *model.User) error {
	if _, taken := r.emails[user.Email]; taken {
		return ErrEmailExists
	}

	user.ID = ulid.Make().String()
	cp := *user
	r.users = append(r.users, &cp)
	r.emails[user.Email] = struct{}{}
	return nil
}

// DeleteAll removes every user and returns how many were deleted.
func (r *MemoryRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Fail != nil {
		return 0, storeError("delete users", r.Fail)
	}

	n := int64(len(r.users))
	r.users = nil
	r.emails = make(map[string]struct{})
	return n, nil
}

// Ping reports the configured failure, if any.
func (r *MemoryRepository) Ping(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Fail
}

// Close is a no-op.
func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}
