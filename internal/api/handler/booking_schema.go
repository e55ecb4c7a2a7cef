package handler

// createBookingRequest is the payload for POST /api/bookings. Date is
// "YYYY-MM-DD" and the times are "HH:MM"; the interval is half-open, so
// endTime itself is free for the next booking. Status defaults to Pending.
type createBookingRequest struct {
	RoomID      string `json:"roomId" validate:"required"`
	UserID      string `json:"userId" validate:"required"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}

// updateBookingRequest is the partial patch for PUT /api/bookings/:id.
type updateBookingRequest struct {
	RoomID      *string `json:"roomId"`
	UserID      *string `json:"userId"`
	Date        *string `json:"date"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}
