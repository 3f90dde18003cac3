package models

import "time"

// Question is a user-posted question. UserID records the owner; the
// authorization policy reads it for edit/delete decisions.
type Question struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"size:64;uniqueIndex;not null"`
	Content   string `gorm:"size:500;not null"`
	Date      time.Time
	UserID    uint `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
