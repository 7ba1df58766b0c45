package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "taskboard_flash"

// setFlash queues a one-shot message for the next page render.
func setFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash returns the queued message, if any, and clears it.
func popFlash(c echo.Context) string {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
