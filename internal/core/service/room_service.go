package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
)

// RoomService implements ports.RoomService.
type RoomService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

// Create registers a new room. New rooms start active; Features defaults to
// an empty list so the stored document never carries a null array.
func (s *RoomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateNewRoom(input, snapshot); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	features := input.Features
	if features == nil {
		features = []string{}
	}
	room := &domain.Room{
		ID:       id,
		Name:     input.Name,
		Capacity: input.Capacity,
		Location: input.Location,
		Features: features,
		IsActive: true,
	}

	if err := s.repo.Insert(ctx, room); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert room")
		return nil, err
	}

	s.logger.Info().Str("room_id", room.ID).Str("name", room.Name).Msg("room created")
	return room, nil
}

// Update merges a partial patch onto the stored record, re-checking name
// uniqueness only when the patch renames the room.
func (s *RoomService) Update(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateRoomUpdate(id, input, snapshot); err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Capacity != nil {
		merged.Capacity = *input.Capacity
	}
	if input.Location != nil {
		merged.Location = *input.Location
	}
	if input.Features != nil {
		merged.Features = *input.Features
	}
	if input.IsActive != nil {
		merged.IsActive = *input.IsActive
	}

	if err := s.repo.Replace(ctx, id, &merged); err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", id).Msg("room updated")
	return &merged, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	if err := s.repo.RemoveByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.repo.ListAll(ctx)
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) ListByActive(ctx context.Context, active bool) ([]domain.Room, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Room, 0, len(snapshot))
	for _, r := range snapshot {
		if r.IsActive == active {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *RoomService) Stats(ctx context.Context) (*domain.RoomStats, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.RoomStats{Total: len(snapshot)}
	for _, r := range snapshot {
		if r.IsActive {
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	return stats, nil
}
