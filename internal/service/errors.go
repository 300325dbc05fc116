package service

import (
	"errors"

	"github.com/showsapi/showsapi/internal/metrics"
	"github.com/showsapi/showsapi/internal/model"
	"github.com/showsapi/showsapi/internal/repository"
)

// classify maps store errors onto the two failure kinds callers see:
// *model.ValidationError for constraint violations and *repository.StoreError
// for everything else.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrEmailExists) {
		return model.NewFieldValidationError("email", "already exists")
	}
	if IsValidationError(err) || IsStoreError(err) {
		return err
	}
	return &repository.StoreError{Op: "store", Err: err}
}

// IsValidationError reports whether err is a constraint violation.
func IsValidationError(err error) bool {
	var verr *model.ValidationError
	return errors.As(err, &verr)
}

// IsStoreError reports whether err is a store connectivity or internal failure.
func IsStoreError(err error) bool {
	return repository.IsStoreError(err)
}

func failureKind(err error) string {
	if IsValidationError(err) {
		return metrics.KindValidation
	}
	return metrics.KindStore
}
