package domain

import "time"

// BookingStatus is the lifecycle state of a booking. Cancelled bookings no
// longer occupy their time slot.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking reserves a room for a user on a single day. Date is "YYYY-MM-DD";
// StartTime and EndTime are "HH:MM" clock values forming the half-open
// interval [StartTime, EndTime). Bookings never span midnight.
//
// RoomID and UserID are weak references: the records they point at may be
// deleted later without cascading to the booking.
type Booking struct {
	ID          string        `json:"id" bson:"_id"`
	RoomID      string        `json:"roomId" bson:"room_id"`
	UserID      string        `json:"userId" bson:"user_id"`
	Date        string        `json:"date" bson:"date"`
	StartTime   string        `json:"startTime" bson:"start_time"`
	EndTime     string        `json:"endTime" bson:"end_time"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Status      BookingStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// BookingStats summarises the booking collection.
type BookingStats struct {
	Total int `json:"total"`
}
