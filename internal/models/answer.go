package models

import "time"

// Answer is a user-posted answer to a question.
type Answer struct {
	ID         uint   `gorm:"primaryKey"`
	UUID       string `gorm:"size:64;uniqueIndex;not null"`
	Ans        string `gorm:"size:255;not null"`
	Date       time.Time
	UserID     uint `gorm:"index;not null"`
	QuestionID uint `gorm:"index;not null"`
	CreatedAt  time.Time

	User     User     `gorm:"constraint:OnDelete:CASCADE"`
	Question Question `gorm:"constraint:OnDelete:CASCADE"`
}
