package auth

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ManagerID *string   `json:"managerId"`
	IsAdmin   bool      `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// AuthUser carries the password hash and is never serialized.
type AuthUser struct {
	ID           string
	Email        string
	Name         string
	ManagerID    *string
	IsAdmin      bool
	PasswordHash string
}

// UserContext is the authenticated identity attached to a request.
type UserContext struct {
	UserID string
	Email  string
}
