package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
)

// BookingService implements ports.BookingService. It orchestrates the
// validation engine and conflict checker over repository snapshots and
// serializes writes per roomId through the Locker, so two concurrent
// requests for the same room cannot both pass the conflict check against a
// stale snapshot.
type BookingService struct {
	bookings ports.BookingRepository
	rooms    ports.RoomRepository
	users    ports.UserRepository
	locks    ports.Locker
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	rooms ports.RoomRepository,
	users ports.UserRepository,
	locks ports.Locker,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		locks:    locks,
		logger:   logger,
	}
}

// Create validates and persists a new booking. Status defaults to Pending.
// The referenced room and user must exist.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	candidate := &domain.Booking{
		RoomID:      input.RoomID,
		UserID:      input.UserID,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
	if candidate.Status == "" {
		candidate.Status = domain.StatusPending
	}

	if err := s.checkReferences(ctx, candidate.RoomID, candidate.UserID); err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(ctx, candidate.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateNewBooking(candidate, snapshot); err != nil {
		return nil, err
	}

	id, err := s.bookings.NextID(ctx)
	if err != nil {
		return nil, err
	}
	candidate.ID = id

	now := time.Now().UTC()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if err := s.bookings.Insert(ctx, candidate); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", candidate.ID).
		Str("room_id", candidate.RoomID).
		Str("date", candidate.Date).
		Str("slot", candidate.StartTime+"-"+candidate.EndTime).
		Msg("booking created")
	return candidate, nil
}

// Update merges a partial patch onto the stored booking. The conflict check
// only runs when the patch touches the slot (room, date, times or status);
// a title-only edit never re-tests the unchanged interval.
func (s *BookingService) Update(ctx context.Context, id string, input ports.UpdateBookingInput) (*domain.Booking, error) {
	existing, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if input.RoomID != nil {
		merged.RoomID = *input.RoomID
	}
	if input.UserID != nil {
		merged.UserID = *input.UserID
	}
	if input.Date != nil {
		merged.Date = *input.Date
	}
	if input.StartTime != nil {
		merged.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		merged.EndTime = *input.EndTime
	}
	if input.Title != nil {
		merged.Title = *input.Title
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.Status != nil {
		merged.Status = *input.Status
	}

	// Re-verify weak references only when the patch re-points them.
	if input.RoomID != nil || input.UserID != nil {
		if err := s.checkReferences(ctx, merged.RoomID, merged.UserID); err != nil {
			return nil, err
		}
	}

	release, err := s.locks.Acquire(ctx, merged.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateBookingUpdate(&merged, snapshot, input.ReschedulesSlot()); err != nil {
		return nil, err
	}

	merged.UpdatedAt = time.Now().UTC()
	if err := s.bookings.Replace(ctx, id, &merged); err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_id", id).Msg("booking updated")
	return &merged, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.RemoveByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	return s.filter(ctx, func(b *domain.Booking) bool { return b.RoomID == roomID })
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.filter(ctx, func(b *domain.Booking) bool { return b.UserID == userID })
}

func (s *BookingService) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	return s.filter(ctx, func(b *domain.Booking) bool { return b.Date == date })
}

func (s *BookingService) Stats(ctx context.Context) (*domain.BookingStats, error) {
	snapshot, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.BookingStats{Total: len(snapshot)}, nil
}

func (s *BookingService) filter(ctx context.Context, keep func(*domain.Booking) bool) ([]domain.Booking, error) {
	snapshot, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Booking, 0, len(snapshot))
	for i := range snapshot {
		if keep(&snapshot[i]) {
			matched = append(matched, snapshot[i])
		}
	}
	return matched, nil
}

// checkReferences verifies that the referenced room and user exist. The
// stored ids stay weak references: deleting a room later does not cascade.
func (s *BookingService) checkReferences(ctx context.Context, roomID, userID string) error {
	if roomID != "" {
		if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
			return err
		}
	}
	if userID != "" {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}
