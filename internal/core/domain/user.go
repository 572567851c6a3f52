package domain

import (
	"errors"
	"time"
)

const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// Profile carries the optional self-description fields of an account.
type Profile struct {
	Avatar   string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Resume   string `json:"resume,omitempty" bson:"resume,omitempty"`
	Bio      string `json:"bio,omitempty" bson:"bio,omitempty"`
}

// User models an authenticated identity. Role is fixed at registration.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      *Profile  `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether r is one of the two account roles.
func ValidRole(r string) bool {
	return r == RoleJobseeker || r == RoleEmployer
}
