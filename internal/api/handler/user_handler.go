package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roomly/booking-system/internal/api/metrics"
	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations. Domain errors are
// returned as-is and mapped to status codes by the central error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/user.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		Registration: req.Registration,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// List handles GET /api/user. An optional isActive query parameter filters
// on the active flag.
func (h *UserHandler) List(c echo.Context) error {
	if raw := c.QueryParam("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isActive must be true or false")
		}
		users, err := h.service.ListByActive(c.Request().Context(), active)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, users)
	}

	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Search handles GET /api/user/search?q=. The query matches name, email and
// registration case-insensitively.
func (h *UserHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}
	users, err := h.service.Search(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListActive handles GET /api/user/active.
func (h *UserHandler) ListActive(c echo.Context) error {
	users, err := h.service.ListByActive(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Stats handles GET /api/user/stats.
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Get handles GET /api/user/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/user/:id with a partial payload.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		Registration: req.Registration,
		IsActive:     req.IsActive,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}
	if input.IsEmpty() {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/user/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues("user").Inc()
	return c.JSON(http.StatusOK, deleteResponse{Message: "user deleted"})
}
