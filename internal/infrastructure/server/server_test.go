package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trabajos/core/internal/infrastructure/logger"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = newHTTPErrorHandler(logger.NewNop())
	return e
}

func TestErrorHandlerUnmatchedRoute(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	want := `{"error":"route not found"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body: got %s, want %s", got, want)
	}
}

func TestErrorHandlerKeepsHTTPErrorMessage(t *testing.T) {
	e := newTestEcho()
	e.GET("/bad", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task id")
	})

	req := httptest.NewRequest(http.MethodGet, "/bad", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	want := `{"error":"invalid task id"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body: got %s, want %s", got, want)
	}
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("pq: connection refused")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "connection refused") {
		t.Errorf("store detail leaked to the client: %s", body)
	}
	want := `{"error":"internal server error"}`
	if got := strings.TrimSpace(body); got != want {
		t.Errorf("body: got %s, want %s", got, want)
	}
}

func TestErrorHandlerHeadRequestHasNoBody(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodHead, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", rec.Body.String())
	}
}
