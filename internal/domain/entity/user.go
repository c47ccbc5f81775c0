// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is the approval state of an account.
type UserStatus string

const (
	// UserStatusActive accounts can log in.
	UserStatusActive UserStatus = "active"
	// UserStatusPending accounts registered themselves and wait for admin approval.
	UserStatusPending UserStatus = "pending"
	// UserStatusLocked accounts were locked by an admin.
	UserStatusLocked UserStatus = "locked"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusPending, UserStatusLocked:
		return true
	default:
		return false
	}
}

// User is a staff or admin account.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name         string     // Display name.
	Username     string     // Login name; self-registered accounts use their phone.
	Phone        string     // Contact phone, also accepted as login identifier.
	PasswordHash string     // bcrypt hash, never serialised.
	Role         Role       // admin or staff.
	Status       UserStatus // active, pending or locked.
	IsOnline     bool       // Set on login and cleared on logout.
	Avatar       string     // Optional avatar URL.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role.CanManage()
}

// CanLogin reports whether the account status allows authentication.
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}

// DisplayName returns the name, falling back to the username.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Username
}
