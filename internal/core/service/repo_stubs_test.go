package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/roomly/booking-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// noopLocker satisfies ports.Locker without any serialization; the locking
// behaviour itself is covered by the lock package tests.
type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}

func nextNumericID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

type stubUserRepo struct {
	users []domain.User
	err   error // when set, every operation fails with this error
}

func (r *stubUserRepo) ListAll(context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.User{}, r.users...), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.users {
		if r.users[i].ID == id {
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *stubUserRepo) Replace(_ context.Context, id string, u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i] = *u
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) RemoveByID(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) NextID(context.Context) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	ids := make([]string, len(r.users))
	for i := range r.users {
		ids[i] = r.users[i].ID
	}
	return nextNumericID(ids), nil
}

type stubRoomRepo struct {
	rooms []domain.Room
	err   error
}

func (r *stubRoomRepo) ListAll(context.Context) ([]domain.Room, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.Room{}, r.rooms...), nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			clone := r.rooms[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *stubRoomRepo) Insert(_ context.Context, room *domain.Room) error {
	if r.err != nil {
		return r.err
	}
	r.rooms = append(r.rooms, *room)
	return nil
}

func (r *stubRoomRepo) Replace(_ context.Context, id string, room *domain.Room) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			r.rooms[i] = *room
			return nil
		}
	}
	return domain.ErrRoomNotFound
}

func (r *stubRoomRepo) RemoveByID(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			return nil
		}
	}
	return domain.ErrRoomNotFound
}

func (r *stubRoomRepo) NextID(context.Context) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	ids := make([]string, len(r.rooms))
	for i := range r.rooms {
		ids[i] = r.rooms[i].ID
	}
	return nextNumericID(ids), nil
}

type stubBookingRepo struct {
	bookings []domain.Booking
	err      error
}

func (r *stubBookingRepo) ListAll(context.Context) ([]domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.Booking{}, r.bookings...), nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			clone := r.bookings[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) Insert(_ context.Context, b *domain.Booking) error {
	if r.err != nil {
		return r.err
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *stubBookingRepo) Replace(_ context.Context, id string, b *domain.Booking) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i] = *b
			return nil
		}
	}
	return domain.ErrBookingNotFound
}

func (r *stubBookingRepo) RemoveByID(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return domain.ErrBookingNotFound
}

func (r *stubBookingRepo) NextID(context.Context) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	ids := make([]string, len(r.bookings))
	for i := range r.bookings {
		ids[i] = r.bookings[i].ID
	}
	return nextNumericID(ids), nil
}
