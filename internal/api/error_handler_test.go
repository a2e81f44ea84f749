package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

func newErrorHandlerContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return env
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newErrorHandlerContext(t)

	h(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeErrorEnvelope(t, rec)
	if env.Success || env.Message != "route not found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestHTTPErrorHandler_Forbidden(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newErrorHandlerContext(t)

	h(domain.ErrForbidden, c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	env := decodeErrorEnvelope(t, rec)
	if env.Success || env.Message != domain.ErrForbidden.Error() {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestHTTPErrorHandler_InvalidToken(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newErrorHandlerContext(t)

	h(domain.ErrInvalidToken, c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newErrorHandlerContext(t)

	h(errors.New("connection reset"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	env := decodeErrorEnvelope(t, rec)
	// Internal detail must never reach the client.
	if env.Message != "internal server error" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}
