package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/api/metrics"
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// LoginThrottle limits login attempts per caller. A nil throttle disables
// limiting; a throttle error fails open so auth never depends on the cache.
type LoginThrottle interface {
	Allow(ctx context.Context, email, addr string) (bool, error)
}

type AuthHandler struct {
	authService ports.AuthService
	throttle    LoginThrottle
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, throttle LoginThrottle, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle, logger: logger}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a new account and returns it with a bearer token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, http.StatusCreated, authData{User: user, Token: token})
}

// Login verifies credentials and returns the account with a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      429   {object}  envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, err.Error()))
	}

	if h.throttle != nil {
		allowed, err := h.throttle.Allow(c.Request().Context(), req.Email, c.RealIP())
		if err != nil {
			h.logger.Warn().Err(err).Msg("login throttle unavailable, failing open")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return respondError(c, echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later"))
		}
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return respondError(c, err)
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return respondData(c, http.StatusOK, authData{User: user, Token: token})
}
