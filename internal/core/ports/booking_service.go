package ports

import (
	"context"

	"github.com/roomly/booking-system/internal/core/domain"
)

// CreateBookingInput carries the data needed to create a booking.
// Status defaults to Pending when empty.
type CreateBookingInput struct {
	RoomID      string
	UserID      string
	Date        string
	StartTime   string
	EndTime     string
	Title       string
	Description string
	Status      domain.BookingStatus
}

// UpdateBookingInput is a partial patch; nil fields are left untouched.
type UpdateBookingInput struct {
	RoomID      *string
	UserID      *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Title       *string
	Description *string
	Status      *domain.BookingStatus
}

// ReschedulesSlot reports whether the patch touches any field that
// participates in conflict detection. When false, an update must not
// re-run the conflict check (the unchanged slot would only ever collide
// with itself or with bookings it already coexists with).
func (in UpdateBookingInput) ReschedulesSlot() bool {
	return in.RoomID != nil || in.Date != nil || in.StartTime != nil || in.EndTime != nil || in.Status != nil
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
	Stats(ctx context.Context) (*domain.BookingStats, error)
}
