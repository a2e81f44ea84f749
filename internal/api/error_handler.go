package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// errorEnvelope matches the handlers' response shape for failures.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders the
// canonical envelope for errors escaping the handlers: router 404/405,
// middleware rejections, and panics recovered by echo. Unexpected errors are
// logged with their real cause and reported as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorEnvelope{Success: false, Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		switch {
		case errors.Is(err, domain.ErrForbidden):
			_ = c.JSON(http.StatusForbidden, errorEnvelope{Success: false, Message: err.Error()})
			return
		case errors.Is(err, domain.ErrInvalidToken):
			_ = c.JSON(http.StatusUnauthorized, errorEnvelope{Success: false, Message: err.Error()})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, errorEnvelope{Success: false, Message: "internal server error"})
	}
}
