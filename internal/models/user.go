package models

import "time"

// Role is a closed set. The upstream data had free-form role strings
// ("admin", "Admin", "nonadmin"); everything is normalized to these two.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a stored role string onto the closed set, defaulting
// to standard for anything unrecognized.
func ParseRole(s string) Role {
	switch s {
	case "admin", "Admin", "ADMIN":
		return RoleAdmin
	default:
		return RoleStandard
	}
}

// User represents a registered account. UUID is the public identifier
// used in API paths; ID stays internal to the database.
type User struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"size:64;uniqueIndex;not null"`
	FirstName     string `gorm:"size:64;not null"`
	LastName      string `gorm:"size:64;not null"`
	Username      string `gorm:"size:64;uniqueIndex;not null"`
	Email         string `gorm:"size:128;uniqueIndex;not null"`
	Password      string `gorm:"size:255;not null"` // salt$hash, see auth package
	Role          Role   `gorm:"size:16;not null;default:standard"`
	AboutMe       string `gorm:"size:512"`
	DOB           string `gorm:"size:32"`
	Country       string `gorm:"size:64"`
	ContactNumber string `gorm:"size:32"`
	CreatedAt     time.Time
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
