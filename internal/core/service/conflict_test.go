package service

import (
	"testing"

	"github.com/roomly/booking-system/internal/core/domain"
)

func booking(id, roomID, date, start, end string, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:        id,
		RoomID:    roomID,
		UserID:    "1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Title:     "standup",
		Status:    status,
	}
}

func TestHasConflict(t *testing.T) {
	existing := []domain.Booking{
		booking("1", "1", "2024-01-10", "09:00", "10:00", domain.StatusConfirmed),
		booking("2", "1", "2024-01-10", "14:00", "15:00", domain.StatusCancelled),
		booking("3", "2", "2024-01-10", "09:00", "10:00", domain.StatusPending),
	}

	tests := []struct {
		name      string
		candidate ConflictCandidate
		excludeID string
		want      bool
	}{
		{
			name:      "overlapping slot same room",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "09:30", EndTime: "10:30"},
			want:      true,
		},
		{
			name:      "candidate fully inside existing slot",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "09:15", EndTime: "09:45"},
			want:      true,
		},
		{
			name:      "candidate enclosing existing slot",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "08:00", EndTime: "12:00"},
			want:      true,
		},
		{
			name:      "back-to-back is free under half-open intervals",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "10:00", EndTime: "11:00"},
			want:      false,
		},
		{
			name:      "ending exactly at existing start is free",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "08:00", EndTime: "09:00"},
			want:      false,
		},
		{
			name:      "different room same slot",
			candidate: ConflictCandidate{RoomID: "3", Date: "2024-01-10", StartTime: "09:00", EndTime: "10:00"},
			want:      false,
		},
		{
			name:      "different date same slot",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-11", StartTime: "09:00", EndTime: "10:00"},
			want:      false,
		},
		{
			name:      "cancelled bookings occupy no slot",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "14:00", EndTime: "15:00"},
			want:      false,
		},
		{
			name:      "pending bookings do occupy their slot",
			candidate: ConflictCandidate{RoomID: "2", Date: "2024-01-10", StartTime: "09:30", EndTime: "10:30"},
			want:      true,
		},
		{
			name:      "excludeID skips the booking being updated",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "09:00", EndTime: "10:00"},
			excludeID: "1",
			want:      false,
		},
		{
			name:      "zero-duration candidate never conflicts",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "09:30", EndTime: "09:30"},
			want:      false,
		},
		{
			name:      "unparsable candidate times never conflict",
			candidate: ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "morning", EndTime: "noon"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.candidate, existing, tt.excludeID); got != tt.want {
				t.Errorf("HasConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasConflict_ZeroDurationExistingBlocksNothing(t *testing.T) {
	existing := []domain.Booking{
		booking("1", "1", "2024-01-10", "09:00", "09:00", domain.StatusConfirmed),
	}
	candidate := ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "08:00", EndTime: "12:00"}

	if HasConflict(candidate, existing, "") {
		t.Error("a zero-duration booking must not block the room")
	}
}

func TestHasConflict_UnparsableStoredTimesAreSkipped(t *testing.T) {
	existing := []domain.Booking{
		booking("1", "1", "2024-01-10", "whenever", "later", domain.StatusConfirmed),
	}
	candidate := ConflictCandidate{RoomID: "1", Date: "2024-01-10", StartTime: "09:00", EndTime: "10:00"}

	if HasConflict(candidate, existing, "") {
		t.Error("stored bookings with malformed times must not block the room")
	}
}
