package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/plutoride/vendor-app/internal/utils"
)

// TokenSource exposes the current bearer token of the active session
type TokenSource interface {
	Token() string
}

// RequireSession rejects requests while no session token is held.
// The booking, profile and balance routes sit behind it; login, signup and
// session inspection stay open.
func RequireSession(tokens TokenSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokens.Token() == "" {
				return utils.UnauthorizedResponse(c, "not logged in")
			}
			return next(c)
		}
	}
}
