package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
)

// UserService implements ports.UserService. It holds no state between
// calls: every operation works on a fresh snapshot from the repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers a new user. New users always start as active Standard
// users; role changes go through Update.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateNewUser(input, snapshot); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           id,
		Name:         input.Name,
		Email:        input.Email,
		Registration: input.Registration,
		Role:         domain.RoleStandard,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user created")
	return user, nil
}

// Update merges a partial patch onto the stored record. Uniqueness is only
// re-checked for fields the patch actually carries.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateUserUpdate(id, input, snapshot); err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Email != nil {
		merged.Email = *input.Email
	}
	if input.Registration != nil {
		merged.Registration = *input.Registration
	}
	if input.Role != nil {
		merged.Role = *input.Role
	}
	if input.IsActive != nil {
		merged.IsActive = *input.IsActive
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, id, &merged); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return &merged, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.RemoveByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByActive filters the snapshot on the IsActive flag.
func (s *UserService) ListByActive(ctx context.Context, active bool) ([]domain.User, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.User, 0, len(snapshot))
	for _, u := range snapshot {
		if u.IsActive == active {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// Search matches query case-insensitively against name, email and
// registration.
func (s *UserService) Search(ctx context.Context, query string) ([]domain.User, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := make([]domain.User, 0, len(snapshot))
	for _, u := range snapshot {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.Registration), q) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (s *UserService) Stats(ctx context.Context) (*domain.UserStats, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.UserStats{Total: len(snapshot)}
	for _, u := range snapshot {
		if u.IsActive {
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	return stats, nil
}
