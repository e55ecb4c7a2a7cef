package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/roomly/booking-system/internal/api/handler"
	"github.com/roomly/booking-system/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are already
// wired to a storage backend, so the router stays agnostic of whether
// records live in MongoDB or JSON files.
type Dependencies struct {
	Users    ports.UserService
	Rooms    ports.RoomService
	Bookings ports.BookingService
	// Readiness maps a dependency name to its connectivity check.
	Readiness map[string]handler.Pinger
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Users)
	roomHandler := handler.NewRoomHandler(deps.Rooms)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)

	apiGroup := e.Group("/api")

	users := apiGroup.Group("/user")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/search", userHandler.Search)
	users.GET("/active", userHandler.ListActive)
	users.GET("/stats", userHandler.Stats)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	rooms := apiGroup.Group("/rooms")
	rooms.POST("", roomHandler.Create)
	rooms.GET("", roomHandler.List)
	rooms.GET("/active", roomHandler.ListActive)
	rooms.GET("/stats", roomHandler.Stats)
	rooms.GET("/:id", roomHandler.Get)
	rooms.PUT("/:id", roomHandler.Update)
	rooms.DELETE("/:id", roomHandler.Delete)

	bookings := apiGroup.Group("/bookings")
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/all", bookingHandler.List)
	bookings.GET("/stats", bookingHandler.Stats)
	bookings.GET("/room/:roomId", bookingHandler.ListByRoom)
	bookings.GET("/user/:userId", bookingHandler.ListByUser)
	bookings.GET("/date/:date", bookingHandler.ListByDate)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.PUT("/:id", bookingHandler.Update)
	bookings.DELETE("/:id", bookingHandler.Delete)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
