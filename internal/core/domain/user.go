package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User models an authenticated actor in the system. PasswordHash is never
// serialized into API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is reference data seeded at deployment time. Every user references
// exactly one role by name.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Principal is the identity resolved from a validated token. It lives only
// for the duration of one request and is never persisted.
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the principal carries the elevated role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
