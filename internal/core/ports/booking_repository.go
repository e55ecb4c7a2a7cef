package ports

import (
	"context"

	"github.com/roomly/booking-system/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
//
// Conflict detection is not a repository concern: the booking service reads
// the full snapshot via ListAll and runs the overlap check in memory, so
// both backends (MongoDB and flat JSON files) behave identically.
type BookingRepository interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	// FindByID returns domain.ErrBookingNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	Insert(ctx context.Context, b *domain.Booking) error
	// Replace returns domain.ErrBookingNotFound when no record matches.
	Replace(ctx context.Context, id string, b *domain.Booking) error
	// RemoveByID returns domain.ErrBookingNotFound when no record matches.
	RemoveByID(ctx context.Context, id string) error
	// NextID returns max(numeric ids)+1 as a string, or "1" when empty.
	NextID(ctx context.Context) (string, error)
}
