package handler

import (
	"github.com/labstack/echo/v4"
)

// Routes registers the whole surface. Everything task-related sits behind
// RequireAuth; register and login are the only unauthenticated pages.
func Routes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Home)
	e.GET("/healthz", h.Healthz)

	e.GET("/register", h.RegisterForm)
	e.POST("/register", h.Register)
	e.GET("/login", h.LoginForm)
	e.POST("/login", h.Login)

	protected := e.Group("", RequireAuth(h.auth))
	protected.GET("/dashboard", h.Dashboard)
	protected.POST("/add", h.AddTask)
	protected.GET("/edit/:id", h.EditForm)
	protected.POST("/edit/:id", h.EditTask)
	protected.GET("/delete/:id", h.DeleteTask)
	protected.GET("/logout", h.Logout)
}
