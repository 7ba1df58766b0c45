package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"taskboard/internal/application/command"
	"taskboard/internal/application/services"
	"taskboard/internal/delivery/view"
	"taskboard/internal/domain/apperrors"
	"taskboard/internal/domain/repositories"
)

// Handler maps the HTTP surface onto the two services. No business logic
// lives here: handlers resolve the caller, trim/bind fields, call one
// store operation, and turn the result into a redirect plus flash.
type Handler struct {
	auth       *services.AuthService
	tasks      *services.TaskService
	limiter    LoginLimiter
	sessionTTL time.Duration
	log        *logrus.Logger
}

// LoginLimiter is the slice of the rate limiter the login handler needs.
type LoginLimiter interface {
	Allow(key string) bool
}

func New(auth *services.AuthService, tasks *services.TaskService, limiter LoginLimiter, sessionTTL time.Duration, log *logrus.Logger) *Handler {
	return &Handler{
		auth:       auth,
		tasks:      tasks,
		limiter:    limiter,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func (h *Handler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (h *Handler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", view.AuthPage{Flash: popFlash(c)})
}

func (h *Handler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	_, err := h.auth.Register(c.Request().Context(), &cmd)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		setFlash(c, "All fields are required")
		return c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, apperrors.ErrConflict):
		setFlash(c, "Username already exists")
		return c.Redirect(http.StatusFound, "/register")
	case err != nil:
		return h.internalError(c, err, "register failed")
	}

	setFlash(c, "Account created! Please login")
	return c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", view.AuthPage{Flash: popFlash(c)})
}

func (h *Handler) Login(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests)
	}

	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	result, err := h.auth.Login(c.Request().Context(), &cmd)
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		setFlash(c, "Invalid login")
		return c.Redirect(http.StatusFound, "/login")
	case err != nil:
		return h.internalError(c, err, "login failed")
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    result.Cookie,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Dashboard(c echo.Context) error {
	userID := callerID(c)

	sort := c.QueryParam("sort")
	order := repositories.NewestFirst
	if sort == "old" {
		order = repositories.OldestFirst
	} else {
		sort = "new"
	}

	tasks, err := h.tasks.List(c.Request().Context(), userID, order)
	if err != nil {
		return h.internalError(c, err, "list tasks failed")
	}

	username := ""
	if user, err := h.auth.FindUser(c.Request().Context(), userID); err == nil && user != nil {
		username = user.Username
	}

	page := view.DashboardPage{
		Username: username,
		Sort:     sort,
		Tasks:    make([]view.TaskView, len(tasks)),
		Flash:    popFlash(c),
	}
	for i, task := range tasks {
		page.Tasks[i] = view.TaskView{ID: task.ID, Title: task.Title}
	}

	return c.Render(http.StatusOK, "dashboard.html", page)
}

func (h *Handler) AddTask(c echo.Context) error {
	cmd := command.CreateTaskCommand{
		OwnerID: callerID(c),
		Title:   c.FormValue("title"),
	}

	_, err := h.tasks.Create(c.Request().Context(), &cmd)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		setFlash(c, "Task cannot be empty")
		return c.Redirect(http.StatusFound, "/dashboard")
	case err != nil:
		return h.internalError(c, err, "create task failed")
	}

	setFlash(c, "Task added")
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) EditForm(c echo.Context) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	task, err := h.tasks.Get(c.Request().Context(), taskID, callerID(c))
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNotOwner):
		setFlash(c, "Unauthorized access")
		return c.Redirect(http.StatusFound, "/dashboard")
	case err != nil:
		return h.internalError(c, err, "load task failed")
	}

	return c.Render(http.StatusOK, "edit.html", view.EditPage{
		Task:  view.TaskView{ID: task.ID, Title: task.Title},
		Flash: popFlash(c),
	})
}

func (h *Handler) EditTask(c echo.Context) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	cmd := command.UpdateTaskCommand{
		TaskID:   taskID,
		CallerID: callerID(c),
		Title:    c.FormValue("title"),
	}

	_, err = h.tasks.Update(c.Request().Context(), &cmd)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNotOwner):
		setFlash(c, "Unauthorized access")
		return c.Redirect(http.StatusFound, "/dashboard")
	case errors.Is(err, apperrors.ErrValidation):
		setFlash(c, "Task cannot be empty")
		return c.Redirect(http.StatusFound, "/edit/"+c.Param("id"))
	case err != nil:
		return h.internalError(c, err, "update task failed")
	}

	setFlash(c, "Task updated")
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	err = h.tasks.Delete(c.Request().Context(), taskID, callerID(c))
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNotOwner):
		setFlash(c, "Unauthorized action")
		return c.Redirect(http.StatusFound, "/dashboard")
	case err != nil:
		return h.internalError(c, err, "delete task failed")
	}

	setFlash(c, "Task deleted")
	return c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		h.auth.Logout(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

func parseTaskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *Handler) internalError(c echo.Context, err error, message string) error {
	h.log.WithError(err).Error(message)
	return echo.NewHTTPError(http.StatusInternalServerError)
}
