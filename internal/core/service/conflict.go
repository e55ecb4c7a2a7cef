package service

import (
	"time"

	"github.com/roomly/booking-system/internal/core/domain"
)

// ConflictCandidate is the slot a new or rescheduled booking wants to occupy.
type ConflictCandidate struct {
	RoomID    string
	Date      string
	StartTime string
	EndTime   string
}

// HasConflict reports whether candidate overlaps any non-cancelled booking
// for the same room on the same date. excludeID skips the booking being
// updated so a record never collides with itself.
//
// Intervals are half-open: [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
// Back-to-back bookings (e1 == s2) therefore never conflict, and a
// zero-duration booking (start == end) conflicts with nothing; it is
// accepted as an instantaneous marker.
func HasConflict(candidate ConflictCandidate, existing []domain.Booking, excludeID string) bool {
	s1, ok := minuteOfDay(candidate.StartTime)
	if !ok {
		return false
	}
	e1, ok := minuteOfDay(candidate.EndTime)
	if !ok {
		return false
	}
	// [s,s) is empty: it overlaps nothing even when it falls strictly
	// inside an occupied interval.
	if s1 == e1 {
		return false
	}

	for i := range existing {
		b := &existing[i]
		if b.RoomID != candidate.RoomID || b.Date != candidate.Date {
			continue
		}
		if b.Status == domain.StatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		// Stored bookings with unparsable times cannot be compared; they
		// are treated as occupying no slot rather than blocking the room.
		s2, ok := minuteOfDay(b.StartTime)
		if !ok {
			continue
		}
		e2, ok := minuteOfDay(b.EndTime)
		if !ok {
			continue
		}
		// Stored empty intervals occupy no slot either.
		if s2 == e2 {
			continue
		}
		if s1 < e2 && s2 < e1 {
			return true
		}
	}
	return false
}

// minuteOfDay converts an "HH:MM" clock value to minutes since midnight.
func minuteOfDay(clock string) (int, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
