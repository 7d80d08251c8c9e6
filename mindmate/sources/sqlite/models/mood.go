package models

import "time"

// MoodEntry is append-only; rows are never updated or deleted.
type MoodEntry struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"index;type:varchar(255);not null"`
	User      User      `json:"-" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	Sentiment string    `json:"sentiment" gorm:"type:varchar(50);not null"`
	Note      string    `json:"note" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"timestamp" gorm:"not null"`
}
