package model

import "time"

// Portal user types. The portal serves two audiences with separate login
// tabs; a username is only valid together with its declared type.
const (
	UserTypeStaff   = "staff"
	UserTypeStudent = "student"
)

// ValidUserType reports whether t is a recognised portal user type.
func ValidUserType(t string) bool {
	return t == UserTypeStaff || t == UserTypeStudent
}

// PortalUser is a login-capable portal identity, distinct from admin
// accounts. Passwords are stored as hex SHA-256 digests.
type PortalUser struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // digest, never expose
	FullName     string    `json:"full_name" db:"full_name"`
	UserType     string    `json:"user_type" db:"user_type"`
	Email        string    `json:"email" db:"email"`
	Department   string    `json:"department" db:"department"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PortalProfile is the public projection of a PortalUser returned by the
// login endpoint. It deliberately carries no credential material.
type PortalProfile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	UserType   string `json:"user_type"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Profile returns the public projection of u.
func (u *PortalUser) Profile() PortalProfile {
	return PortalProfile{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		UserType:   u.UserType,
		Email:      u.Email,
		Department: u.Department,
	}
}
