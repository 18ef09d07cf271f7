package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestBearerToken_CopiesHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := BearerToken()
	handler := mw(func(c echo.Context) error {
		called = true
		if got, _ := c.Get(RawTokenKey).(string); got != "Bearer abc.def.ghi" {
			t.Fatalf("raw token not propagated, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestBearerToken_AbsentHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// An absent header still reaches the handler as an empty string; the
	// principal resolver is the one that rejects it.
	mw := BearerToken()
	handler := mw(func(c echo.Context) error {
		raw, ok := c.Get(RawTokenKey).(string)
		if !ok {
			t.Fatalf("raw token key not set")
		}
		if raw != "" {
			t.Fatalf("expected empty raw token, got %q", raw)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
