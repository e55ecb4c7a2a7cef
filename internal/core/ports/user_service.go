package ports

import (
	"context"

	"github.com/roomly/booking-system/internal/core/domain"
)

// CreateUserInput carries the data needed to register a new user.
// Role and IsActive are assigned by the service (Standard, active).
type CreateUserInput struct {
	Name         string
	Email        string
	Registration string
}

// UpdateUserInput is a partial patch; nil fields are left untouched.
type UpdateUserInput struct {
	Name         *string
	Email        *string
	Registration *string
	Role         *domain.Role
	IsActive     *bool
}

// IsEmpty reports whether the patch carries no fields at all.
func (in UpdateUserInput) IsEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Registration == nil &&
		in.Role == nil && in.IsActive == nil
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ListByActive filters the snapshot on the IsActive flag.
	ListByActive(ctx context.Context, active bool) ([]domain.User, error)
	// Search matches query case-insensitively against name, email and
	// registration.
	Search(ctx context.Context, query string) ([]domain.User, error)
	Stats(ctx context.Context) (*domain.UserStats, error)
}
