package ports

import (
	"context"

	"github.com/roomly/booking-system/internal/core/domain"
)

// CreateRoomInput carries the data needed to register a new room.
// IsActive is assigned by the service (active).
type CreateRoomInput struct {
	Name     string
	Capacity int
	Location string
	Features []string
}

// UpdateRoomInput is a partial patch; nil fields are left untouched.
type UpdateRoomInput struct {
	Name     *string
	Capacity *int
	Location *string
	Features *[]string
	IsActive *bool
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Update(ctx context.Context, id string, input UpdateRoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByActive(ctx context.Context, active bool) ([]domain.Room, error)
	Stats(ctx context.Context) (*domain.RoomStats, error)
}
