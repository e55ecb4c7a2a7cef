package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roomly/booking-system/internal/api/metrics"
	"github.com/roomly/booking-system/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// Create handles POST /api/rooms.
//
// @Summary      Register a new room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), ports.CreateRoomInput{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
		Features: req.Features,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// List handles GET /api/rooms. An optional isActive query parameter filters
// on the active flag.
func (h *RoomHandler) List(c echo.Context) error {
	if raw := c.QueryParam("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isActive must be true or false")
		}
		rooms, err := h.service.ListByActive(c.Request().Context(), active)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rooms)
	}

	rooms, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// ListActive handles GET /api/rooms/active.
func (h *RoomHandler) ListActive(c echo.Context) error {
	rooms, err := h.service.ListByActive(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Stats handles GET /api/rooms/stats.
func (h *RoomHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Get handles GET /api/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Update handles PUT /api/rooms/:id with a partial payload.
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateRoomInput{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
		Features: req.Features,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/rooms/:id.
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues("room").Inc()
	return c.JSON(http.StatusOK, deleteResponse{Message: "room deleted"})
}
