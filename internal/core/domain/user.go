package domain

import "time"

// Role controls what a user is allowed to do at the API boundary.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStandard Role = "Standard"
)

// User is a person who can hold room bookings.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Registration string    `json:"registration" bson:"registration"`
	Role         Role      `json:"role" bson:"role"`
	IsActive     bool      `json:"isActive" bson:"is_active"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// UserStats summarises the user collection.
type UserStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
