package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// envelope is the canonical response shape for every endpoint:
// {"success": bool, "data"?, "count"?, "message"?}.
type envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondList(c echo.Context, data any, count int) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Count: &count, Data: data})
}

func respondMessage(c echo.Context, status int, msg string) error {
	return c.JSON(status, envelope{Success: true, Message: msg})
}

// respondError maps domain failures to HTTP status codes and renders the
// error envelope. Unknown errors collapse to a generic 500 so internal detail
// never reaches the client.
func respondError(c echo.Context, err error) error {
	code, msg := statusForError(err)
	return c.JSON(code, envelope{Success: false, Message: msg})
}

func statusForError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrSweetNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}
