package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomly/booking-system/internal/api/metrics"
	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		RoomID:      req.RoomID,
		UserID:      req.UserID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.BookingStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(string(booking.Status)).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /api/bookings/all.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Update handles PUT /api/bookings/:id with a partial payload. The conflict
// check only re-runs when the patch touches the slot.
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateBookingInput{
		RoomID:      req.RoomID,
		UserID:      req.UserID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		input.Status = &status
	}

	booking, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /api/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues("booking").Inc()
	return c.JSON(http.StatusOK, deleteResponse{Message: "booking deleted"})
}

// ListByRoom handles GET /api/bookings/room/:roomId.
func (h *BookingHandler) ListByRoom(c echo.Context) error {
	bookings, err := h.service.ListByRoom(c.Request().Context(), c.Param("roomId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListByUser handles GET /api/bookings/user/:userId.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	bookings, err := h.service.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListByDate handles GET /api/bookings/date/:date.
func (h *BookingHandler) ListByDate(c echo.Context) error {
	bookings, err := h.service.ListByDate(c.Request().Context(), c.Param("date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Stats handles GET /api/bookings/stats.
func (h *BookingHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
