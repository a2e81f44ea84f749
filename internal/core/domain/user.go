package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserExists = errors.New("user already exists with this email or username")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account. The password hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Principal is the identity/role pair carried by a verified token. It lives
// for the duration of a single request and is never persisted.
type Principal struct {
	Identity string
	Role     string
}

// ValidRole reports whether r is a member of the role enum.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// RoleAllowed reports whether role is in the permitted set.
func RoleAllowed(role string, allowed ...string) bool {
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
