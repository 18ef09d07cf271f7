package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openboard/board-service/internal/api/middleware"
)

// ctxRawToken extracts the raw Authorization header value injected by the
// BearerToken middleware. The value may legitimately be empty — the resolver
// turns that into the single collapsed token error — but a missing key means
// the route was registered without the middleware, which is a wiring bug worth
// failing loudly on.
func ctxRawToken(c echo.Context) (string, error) {
	raw, ok := c.Get(middleware.RawTokenKey).(string)
	if !ok {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "bearer middleware not installed")
	}
	return raw, nil
}
