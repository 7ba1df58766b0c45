package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/application/services"
)

const (
	sessionCookieName = "taskboard_session"
	userIDContextKey  = "userID"
)

// RequireAuth is the access-control gate in front of every protected
// route. It resolves the caller exactly once per request and stashes the
// user id in the echo context; anything short of a valid session redirects
// to /login before any handler code runs.
func RequireAuth(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookieName)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			userID, ok := auth.CurrentUser(c.Request().Context(), cookie.Value)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// callerID reads the identity RequireAuth resolved. Only valid on routes
// registered behind it.
func callerID(c echo.Context) uint {
	return c.Get(userIDContextKey).(uint)
}
