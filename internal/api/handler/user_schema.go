package handler

// createUserRequest is the payload for POST /api/user. New users always
// start as active Standard users.
type createUserRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Registration string `json:"registration" validate:"required"`
}

// updateUserRequest is the partial patch for PUT /api/user/:id. Absent
// fields stay untouched.
type updateUserRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Registration *string `json:"registration"`
	Role         *string `json:"role" validate:"omitempty,oneof=Admin Standard"`
	IsActive     *bool   `json:"isActive"`
}

// deleteResponse confirms a successful delete.
type deleteResponse struct {
	Message string `json:"message"`
}
