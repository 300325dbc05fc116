// Package model defines domain entities for the application.
package model

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Field limits for a user record.
const (
	MinNameLength = 2
	MaxNameLength = 50
	MinAge        = 0
	MaxAge        = 120
)

// emailPattern matches <local>@<domain>.<tld>. Deliberately loose; it only
// rejects values that cannot possibly be an address.
var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// User represents a persisted user record.
type User struct {
	ID        string    `json:"id" example:"507f1f77bcf86cd799439011"`
	Name      string    `json:"name" example:"John Doe"`
	Email     string    `json:"email" example:"john@example.com"`
	Age       int       `json:"age" example:"25"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserInput holds the candidate fields for a new user.
// Age is a pointer so that a missing value can be told apart from zero.
type UserInput struct {
	Name      string     `json:"name" validate:"required,min=2,max=50"`
	Email     string     `json:"email" validate:"required,simpleemail"`
	Age       *int       `json:"age" validate:"required,gte=0,lte=120"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return v
}

// NewUser validates the input and constructs a user that is ready to be
// persisted. Surrounding whitespace is stripped from name and email before
// any rule is applied. CreatedAt falls back to now when not supplied.
func NewUser(input UserInput, now time.Time) (*User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, newValidationError(verrs)
		}
		return nil, err
	}

	createdAt := now
	if input.CreatedAt != nil && !input.CreatedAt.IsZero() {
		createdAt = *input.CreatedAt
	}

	return &User{
		Name:      input.Name,
		Email:     input.Email,
		Age:       *input.Age,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}
