// Package response renders HTTP response bodies for the API delivery.
package response

import (
	"net/http"

	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Success writes data as the JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes detail as the error body.
func Error(c echo.Context, statusCode int, detail string) error {
	return c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, detail string) error {
	return Error(c, http.StatusBadRequest, detail)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, detail string) error {
	return Error(c, http.StatusNotFound, detail)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

// HandleAppError renders a domain error. Anything else is handed back to echo's
// error handler with a stack attached so it gets logged.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
