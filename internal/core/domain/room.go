package domain

// Room is a bookable space. Name is unique case-insensitively.
type Room struct {
	ID       string   `json:"id" bson:"_id"`
	Name     string   `json:"name" bson:"name"`
	Capacity int      `json:"capacity" bson:"capacity"`
	Location string   `json:"location,omitempty" bson:"location,omitempty"`
	Features []string `json:"features" bson:"features"`
	IsActive bool     `json:"isActive" bson:"is_active"`
}

// RoomStats summarises the room collection.
type RoomStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
