package models

import "time"

// Staff and client roles understood by the role checks in handlers.
const (
	RoleAdmin      = "admin"
	RoleLawyer     = "lawyer"
	RoleSecretary  = "secretary"
	RoleAccountant = "accountant"
	RoleClient     = "client"
)

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	NationalID string    `json:"national_id,omitempty"`
	Password   string    `json:"-"`
	IsActive   bool      `json:"is_active"`
	FirstLogin bool      `json:"first_login"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsStaff reports whether the user belongs to the office rather than
// being an external client.
func (u User) IsStaff() bool {
	return u.Role != RoleClient
}

type RegisterRequest struct {
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
