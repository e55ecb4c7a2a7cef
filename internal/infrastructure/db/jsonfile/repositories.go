package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/roomly/booking-system/internal/core/domain"
)

// UserRepository stores users in <dataDir>/users.json.
type UserRepository struct {
	col *collection[domain.User]
}

func NewUserRepository(dataDir string) *UserRepository {
	return &UserRepository{col: newCollection(
		filepath.Join(dataDir, "users.json"),
		func(u *domain.User) string { return u.ID },
		domain.ErrUserNotFound,
	)}
}

func (r *UserRepository) ListAll(context.Context) ([]domain.User, error) {
	return r.col.listAll()
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	return r.col.findByID(id)
}

func (r *UserRepository) Insert(_ context.Context, u *domain.User) error {
	return r.col.insert(u)
}

func (r *UserRepository) Replace(_ context.Context, id string, u *domain.User) error {
	return r.col.replace(id, u)
}

func (r *UserRepository) RemoveByID(_ context.Context, id string) error {
	return r.col.removeByID(id)
}

func (r *UserRepository) NextID(context.Context) (string, error) {
	return r.col.nextID()
}

// RoomRepository stores rooms in <dataDir>/rooms.json.
type RoomRepository struct {
	col *collection[domain.Room]
}

func NewRoomRepository(dataDir string) *RoomRepository {
	return &RoomRepository{col: newCollection(
		filepath.Join(dataDir, "rooms.json"),
		func(room *domain.Room) string { return room.ID },
		domain.ErrRoomNotFound,
	)}
}

func (r *RoomRepository) ListAll(context.Context) ([]domain.Room, error) {
	return r.col.listAll()
}

func (r *RoomRepository) FindByID(_ context.Context, id string) (*domain.Room, error) {
	return r.col.findByID(id)
}

func (r *RoomRepository) Insert(_ context.Context, room *domain.Room) error {
	return r.col.insert(room)
}

func (r *RoomRepository) Replace(_ context.Context, id string, room *domain.Room) error {
	return r.col.replace(id, room)
}

func (r *RoomRepository) RemoveByID(_ context.Context, id string) error {
	return r.col.removeByID(id)
}

func (r *RoomRepository) NextID(context.Context) (string, error) {
	return r.col.nextID()
}

// BookingRepository stores bookings in <dataDir>/bookings.json.
type BookingRepository struct {
	col *collection[domain.Booking]
}

func NewBookingRepository(dataDir string) *BookingRepository {
	return &BookingRepository{col: newCollection(
		filepath.Join(dataDir, "bookings.json"),
		func(b *domain.Booking) string { return b.ID },
		domain.ErrBookingNotFound,
	)}
}

func (r *BookingRepository) ListAll(context.Context) ([]domain.Booking, error) {
	return r.col.listAll()
}

func (r *BookingRepository) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	return r.col.findByID(id)
}

func (r *BookingRepository) Insert(_ context.Context, b *domain.Booking) error {
	return r.col.insert(b)
}

func (r *BookingRepository) Replace(_ context.Context, id string, b *domain.Booking) error {
	return r.col.replace(id, b)
}

func (r *BookingRepository) RemoveByID(_ context.Context, id string) error {
	return r.col.removeByID(id)
}

func (r *BookingRepository) NextID(context.Context) (string, error) {
	return r.col.nextID()
}
