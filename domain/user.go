package domain

import "time"

// User is the authenticated account identity returned by the backend.
// It is replaced wholesale on login/register/refresh and cleared on
// logout; the client never mutates individual fields.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AuthResponse carries the bearer token and the owning user.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
