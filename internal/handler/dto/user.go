// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/showsapi/showsapi/internal/model"
)

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name      string     `json:"name" validate:"required" minLength:"2" maxLength:"50" example:"John Doe"`
	Email     string     `json:"email" validate:"required" example:"john@example.com"`
	Age       *int       `json:"age" validate:"required" minimum:"0" maximum:"120" example:"25"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ToUserInput converts the request into schema input.
func (r CreateUserRequest) ToUserInput() model.UserInput {
	return model.UserInput{
		Name:      r.Name,
		Email:     r.Email,
		Age:       r.Age,
		CreatedAt: r.CreatedAt,
	}
}

// UserResponse wraps a single user.
type UserResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    *model.User `json:"data"`
}

// UserListResponse wraps every stored user.
type UserListResponse struct {
	Success bool          `json:"success" example:"true"`
	Count   int           `json:"count" example:"2"`
	Data    []*model.User `json:"data"`
}

// SeedResponse wraps the users written by the seed operation.
type SeedResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message" example:"Sample users created successfully"`
	Count   int           `json:"count" example:"4"`
	Data    []*model.User `json:"data"`
}

// ErrorResponse represents a failed operation.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Error creating user"`
	Error   string `json:"error,omitempty" example:"user validation failed: name: is required"`
}

// RootResponse describes the service and its entry points.
type RootResponse struct {
	Message   string    `json:"message" example:"Shows API is running!"`
	Endpoints Endpoints `json:"endpoints"`
}

// Endpoints lists the public routes.
type Endpoints struct {
	Users         string `json:"users" example:"/api/users"`
	CreateUser    string `json:"createUser" example:"POST /api/users"`
	SeedUsers     string `json:"seedUsers" example:"POST /api/users/seed"`
	Documentation string `json:"documentation" example:"/api-docs"`
}

// NewUserListResponse builds a list envelope. Data is never null.
func NewUserListResponse(users []*model.User) *UserListResponse {
	if users == nil {
		users = []*model.User{}
	}
	return &UserListResponse{Success: true, Count: len(users), Data: users}
}

// NewSeedResponse builds a seed envelope.
func NewSeedResponse(users []*model.User) *SeedResponse {
	if users == nil {
		users = []*model.User{}
	}
	return &SeedResponse{
		Success: true,
		Message: "Sample users created successfully",
		Count:   len(users),
		Data:    users,
	}
}
