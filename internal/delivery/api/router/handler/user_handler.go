package handler

import (
	"log/slog"
	"net/http"

	"addressbook/internal/delivery/api/response"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/optional"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const msgInvalidUserID = "Invalid user ID"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for the users living at an address
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for creating a user under an address
type CreateUserRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Email *string `json:"email" validate:"omitnil,email,max=255"`
	Phone string  `json:"phone" validate:"required,max=64"`
}

// UpdateUserRequest represents the request body for a partial user update
type UpdateUserRequest struct {
	Name  optional.Value[string] `json:"name" validate:"omitnil,min=1,max=255"`
	Email optional.Value[string] `json:"email" validate:"omitnil,email,max=255"`
	Phone optional.Value[string] `json:"phone" validate:"omitnil,min=1,max=64"`
}

// CreateUser handles creating a user under the address in the path
func (h *UserHandler) CreateUser(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, msgInvalidAddressID)
	}

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), addressID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ListAddressUsers handles listing the users of an address
func (h *UserHandler) ListAddressUsers(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, msgInvalidAddressID)
	}

	users, err := h.userUC.ListAddressUsers(c.Request().Context(), addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

// UpdateUser handles a partial user update
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, msgInvalidUserID)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, msgInvalidBody)
	}

	if err := c.Validate(&req); err != nil {
		// A missing user is reported before anything wrong with the body.
		if _, findErr := h.userUC.GetUser(c.Request().Context(), userID); domainerrors.IsNotFound(findErr) {
			return response.HandleAppError(c, findErr)
		}

		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteAddressUser handles removing a user from the address in the path
func (h *UserHandler) DeleteAddressUser(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, msgInvalidAddressID)
	}

	userID, err := pathID(c, "uid")
	if err != nil {
		return response.BadRequest(c, msgInvalidUserID)
	}

	user, err := h.userUC.DeleteAddressUser(c.Request().Context(), addressID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
