// Package repository provides the user document store drivers.
package repository

import (
	"errors"
	"fmt"
)

// Supported store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ErrEmailExists is returned when an insert violates the unique email index.
var ErrEmailExists = errors.New("email already exists")

// StoreError wraps a connectivity or internal failure of the document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err carries a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
