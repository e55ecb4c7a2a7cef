package ports

import (
	"context"

	"github.com/roomly/booking-system/internal/core/domain"
)

// UserRepository defines persistence operations for users. Implementations
// hold no business logic; uniqueness and shape checks live in the service
// layer, which validates against a full snapshot from ListAll.
type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	// Replace overwrites the record with the given id.
	// Returns domain.ErrUserNotFound when no record matches.
	Replace(ctx context.Context, id string, u *domain.User) error
	// RemoveByID returns domain.ErrUserNotFound when no record matches.
	RemoveByID(ctx context.Context, id string) error
	// NextID returns max(numeric ids)+1 as a string, or "1" when empty.
	NextID(ctx context.Context) (string, error)
}
