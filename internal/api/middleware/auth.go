package middleware

import (
	"github.com/labstack/echo/v4"
)

// RawTokenKey is the echo context key the bearer extraction middleware stores
// the raw Authorization header value under.
const RawTokenKey = "rawToken"

// BearerToken copies the Authorization header into the echo context for
// handlers to pass through to the services. It deliberately does not validate
// anything: validation lives in the principal resolver so that every token
// failure collapses into one reported error kind in one place. An absent
// header is stored as the empty string and rejected downstream.
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(RawTokenKey, c.Request().Header.Get("Authorization"))
			return next(c)
		}
	}
}
