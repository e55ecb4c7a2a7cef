package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roomly/booking-system/internal/api/metrics"
	"github.com/roomly/booking-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to deterministic HTTP status codes by
//     inspecting error values, never message text.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Client errors from the validation engine.
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		metrics.ValidationFailuresTotal.WithLabelValues("missing_field").Inc()
		return http.StatusBadRequest, err.Error()
	}
	var invalid *domain.InvalidFieldError
	if errors.As(err, &invalid) {
		metrics.ValidationFailuresTotal.WithLabelValues("invalid_field").Inc()
		return http.StatusBadRequest, err.Error()
	}
	var duplicate *domain.DuplicateFieldError
	if errors.As(err, &duplicate) {
		metrics.ValidationFailuresTotal.WithLabelValues("duplicate_field").Inc()
		return http.StatusConflict, err.Error()
	}

	switch {
	case errors.Is(err, domain.ErrSchedulingConflict):
		metrics.BookingConflictsTotal.Inc()
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, "room not found"
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, "booking not found"
	}

	// Unexpected error (storage failure and friends): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
