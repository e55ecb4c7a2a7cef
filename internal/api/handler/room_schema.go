package handler

// createRoomRequest is the payload for POST /api/rooms. New rooms start
// active.
type createRoomRequest struct {
	Name     string   `json:"name" validate:"required"`
	Capacity int      `json:"capacity" validate:"required,gt=0"`
	Location string   `json:"location"`
	Features []string `json:"features"`
}

// updateRoomRequest is the partial patch for PUT /api/rooms/:id.
type updateRoomRequest struct {
	Name     *string   `json:"name"`
	Capacity *int      `json:"capacity" validate:"omitempty,gt=0"`
	Location *string   `json:"location"`
	Features *[]string `json:"features"`
	IsActive *bool     `json:"isActive"`
}
