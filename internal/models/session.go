package models

import "time"

// Session stores one authenticated login (for signout and validation).
// A user may hold any number of concurrent sessions. LogoutAt is nil
// while the session is still active; signout sets it together with
// collapsing ExpiresAt to the same instant.
type Session struct {
	ID          uint   `gorm:"primaryKey"`
	UUID        string `gorm:"size:64;not null"`
	UserID      uint   `gorm:"index;not null"`
	AccessToken string `gorm:"size:500;uniqueIndex;not null"`
	LoginAt     time.Time
	ExpiresAt   time.Time `gorm:"index;not null"`
	LogoutAt    *time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// ActiveAt reports whether the session is live at the given instant:
// never signed out and not yet past its expiry.
func (s *Session) ActiveAt(now time.Time) bool {
	return s.LogoutAt == nil && now.Before(s.ExpiresAt)
}
