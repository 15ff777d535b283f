package model

import "time"

// User represents a user row in the database.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request. Username accepts either the
// username or the email address of the account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser represents the identity fields safe to return on register/login.
type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse represents a successful register/login response.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	User    AuthUser `json:"user"`
	Token   string   `json:"token"`
}

// Profile represents the full user view returned by /api/me. LastLogin is
// null until the first successful login.
type Profile struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// ProfileResponse wraps a Profile in the standard success envelope.
type ProfileResponse struct {
	Success bool    `json:"success"`
	User    Profile `json:"user"`
}

// VerifyResponse returns the identity claims decoded from a valid token.
type VerifyResponse struct {
	Success bool     `json:"success"`
	User    AuthUser `json:"user"`
}

// Stats holds aggregate user counters.
type Stats struct {
	TotalUsers int64 `json:"totalUsers"`
}

// StatsResponse wraps Stats in the standard success envelope.
type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}
