package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/showsapi/showsapi/internal/handler/dto"
	"github.com/showsapi/showsapi/internal/model"
	"github.com/showsapi/showsapi/internal/service"
)

// Envelope messages for failed user operations.
const (
	msgListFailed   = "Error fetching users"
	msgCreateFailed = "Error creating user"
	msgSeedFailed   = "Error creating sample users"
)

// UserService is the business logic the user handlers depend on.
type UserService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateUser(ctx context.Context, input model.UserInput) (*model.User, error)
	SeedUsers(ctx context.Context) ([]*model.User, error)
}

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    UserService
	logger *slog.Logger

	// compatStoreErrors keeps the historical 400 status for store failures
	// on create and seed. When false those failures return 500.
	compatStoreErrors bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserService, logger *slog.Logger, compatStoreErrors bool) *UserHandler {
	return &UserHandler{
		svc:               svc,
		logger:            logger,
		compatStoreErrors: compatStoreErrors,
	}
}

// List handles GET /api/users.
// @Summary Get all users
// @Description Retrieve a list of all users
// @Tags Users
// @Produce json
// @Success 200 {object} dto.UserListResponse "List of users retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list_users_failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, msgListFailed, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewUserListResponse(users))
}

// Create handles POST /api/users.
// @Summary Create a new user
// @Description Create a new user with name, email, and age
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User to create"
// @Success 201 {object} dto.UserResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Bad request - Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /api/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decodeStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, msgCreateFailed, err)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.ToUserInput())
	if err != nil {
		h.writeError(w, h.writeFailureStatus(err), msgCreateFailed, err)
		return
	}

	h.logger.Info("user_created", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, dto.UserResponse{Success: true, Data: user})
}

// Seed handles POST /api/users/seed.
// @Summary Create sample users
// @Description Delete every user and create the fixed set of sample users
// @Tags Users
// @Produce json
// @Success 201 {object} dto.SeedResponse "Sample users created successfully"
// @Failure 400 {object} dto.ErrorResponse "Bad request"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /api/users/seed [post]
func (h *UserHandler) Seed(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.SeedUsers(r.Context())
	if err != nil {
		h.writeError(w, h.writeFailureStatus(err), msgSeedFailed, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewSeedResponse(users))
}

// writeFailureStatus maps create and seed failures to a status code.
func (h *UserHandler) writeFailureStatus(err error) int {
	if service.IsStoreError(err) {
		h.logger.Error("user_write_failed", "error", err)
		if !h.compatStoreErrors {
			return http.StatusInternalServerError
		}
	}
	return http.StatusBadRequest
}

// writeError writes a failure envelope.
func (h *UserHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
	writeJSON(w, status, dto.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

// decodeStrict decodes a single JSON object and rejects unknown fields.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid request body: unexpected data after JSON object")
	}
	return nil
}
