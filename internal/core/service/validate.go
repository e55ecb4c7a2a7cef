package service

import (
	"strings"
	"time"

	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
)

// The validation engine is a set of pure functions over caller-supplied
// snapshots: no I/O happens here, which keeps every rule testable with a
// plain slice of records. Email and room-name uniqueness are
// case-insensitive; registration codes are opaque identifiers and compare
// case-sensitively.

const dateLayout = "2006-01-02"

// ValidateNewUser checks required fields and uniqueness for a user about to
// be created.
func ValidateNewUser(input ports.CreateUserInput, users []domain.User) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return &domain.MissingFieldError{Field: "name"}
	case strings.TrimSpace(input.Email) == "":
		return &domain.MissingFieldError{Field: "email"}
	case strings.TrimSpace(input.Registration) == "":
		return &domain.MissingFieldError{Field: "registration"}
	}
	if err := checkUserUniqueness(input.Email, input.Registration, users, ""); err != nil {
		return err
	}
	return nil
}

// ValidateUserUpdate checks uniqueness for the fields present in a partial
// patch, excluding the record being updated.
func ValidateUserUpdate(id string, patch ports.UpdateUserInput, users []domain.User) error {
	email := ""
	if patch.Email != nil {
		email = *patch.Email
	}
	registration := ""
	if patch.Registration != nil {
		registration = *patch.Registration
	}
	return checkUserUniqueness(email, registration, users, id)
}

// checkUserUniqueness enforces the two user uniqueness rules. Empty values
// are skipped so partial updates only check what they carry.
func checkUserUniqueness(email, registration string, users []domain.User, excludeID string) error {
	for i := range users {
		u := &users[i]
		if u.ID == excludeID {
			continue
		}
		if email != "" && strings.EqualFold(u.Email, email) {
			return &domain.DuplicateFieldError{Field: "email", Value: email}
		}
		if registration != "" && u.Registration == registration {
			return &domain.DuplicateFieldError{Field: "registration", Value: registration}
		}
	}
	return nil
}

// ValidateNewRoom checks required fields, capacity and name uniqueness for a
// room about to be created.
func ValidateNewRoom(input ports.CreateRoomInput, rooms []domain.Room) error {
	if strings.TrimSpace(input.Name) == "" {
		return &domain.MissingFieldError{Field: "name"}
	}
	if input.Capacity <= 0 {
		return &domain.InvalidFieldError{Field: "capacity", Reason: "must be a positive integer"}
	}
	return checkRoomName(input.Name, rooms, "")
}

// ValidateRoomUpdate checks the fields present in a partial patch, excluding
// the record being updated.
func ValidateRoomUpdate(id string, patch ports.UpdateRoomInput, rooms []domain.Room) error {
	if patch.Capacity != nil && *patch.Capacity <= 0 {
		return &domain.InvalidFieldError{Field: "capacity", Reason: "must be a positive integer"}
	}
	if patch.Name != nil {
		return checkRoomName(*patch.Name, rooms, id)
	}
	return nil
}

func checkRoomName(name string, rooms []domain.Room, excludeID string) error {
	for i := range rooms {
		r := &rooms[i]
		if r.ID == excludeID {
			continue
		}
		if strings.EqualFold(r.Name, name) {
			return &domain.DuplicateFieldError{Field: "name", Value: name}
		}
	}
	return nil
}

// ValidateNewBooking checks shape and then runs conflict detection for a
// fully-built candidate booking against the existing snapshot.
func ValidateNewBooking(b *domain.Booking, existing []domain.Booking) error {
	if err := validateBookingShape(b); err != nil {
		return err
	}
	return checkBookingConflict(b, existing, "")
}

// ValidateBookingUpdate validates the merged record of a partial update.
// recheckConflict is false when none of the slot fields changed, so an
// untouched slot is never re-tested against the collection (scenario: a
// title-only update must not trip over its own interval).
func ValidateBookingUpdate(merged *domain.Booking, existing []domain.Booking, recheckConflict bool) error {
	if err := validateBookingShape(merged); err != nil {
		return err
	}
	if !recheckConflict {
		return nil
	}
	return checkBookingConflict(merged, existing, merged.ID)
}

func checkBookingConflict(b *domain.Booking, existing []domain.Booking, excludeID string) error {
	// A cancelled booking occupies no slot, so it cannot conflict.
	if b.Status == domain.StatusCancelled {
		return nil
	}
	candidate := ConflictCandidate{
		RoomID:    b.RoomID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
	if HasConflict(candidate, existing, excludeID) {
		return domain.ErrSchedulingConflict
	}
	return nil
}

// validateBookingShape enforces required fields and well-formed date/time
// values. start == end is allowed (zero-duration marker); start > end is not.
func validateBookingShape(b *domain.Booking) error {
	switch {
	case b.RoomID == "":
		return &domain.MissingFieldError{Field: "roomId"}
	case b.UserID == "":
		return &domain.MissingFieldError{Field: "userId"}
	case b.Date == "":
		return &domain.MissingFieldError{Field: "date"}
	case b.StartTime == "":
		return &domain.MissingFieldError{Field: "startTime"}
	case b.EndTime == "":
		return &domain.MissingFieldError{Field: "endTime"}
	}

	if _, err := time.Parse(dateLayout, b.Date); err != nil {
		return &domain.InvalidFieldError{Field: "date", Reason: "must be formatted YYYY-MM-DD"}
	}
	start, ok := minuteOfDay(b.StartTime)
	if !ok {
		return &domain.InvalidFieldError{Field: "startTime", Reason: "must be formatted HH:MM"}
	}
	end, ok := minuteOfDay(b.EndTime)
	if !ok {
		return &domain.InvalidFieldError{Field: "endTime", Reason: "must be formatted HH:MM"}
	}
	if end < start {
		return &domain.InvalidFieldError{Field: "endTime", Reason: "must not be before startTime"}
	}
	if !b.Status.IsValid() {
		return &domain.InvalidFieldError{Field: "status", Reason: "must be Pending, Confirmed or Cancelled"}
	}
	return nil
}
