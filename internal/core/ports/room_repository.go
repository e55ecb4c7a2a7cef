package ports

import (
	"context"

	"github.com/roomly/booking-system/internal/core/domain"
)

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	ListAll(ctx context.Context) ([]domain.Room, error)
	// FindByID returns domain.ErrRoomNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	Insert(ctx context.Context, r *domain.Room) error
	// Replace returns domain.ErrRoomNotFound when no record matches.
	Replace(ctx context.Context, id string, r *domain.Room) error
	// RemoveByID returns domain.ErrRoomNotFound when no record matches.
	RemoveByID(ctx context.Context, id string) error
	// NextID returns max(numeric ids)+1 as a string, or "1" when empty.
	NextID(ctx context.Context) (string, error)
}
