package models

import "time"

type ScreeningResult struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username   string    `json:"username" gorm:"index;type:varchar(255);not null"`
	User       User      `json:"-" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	TotalScore int       `json:"total_score" gorm:"not null"`
	Level      string    `json:"predicted_level" gorm:"type:varchar(50);not null"`
	CreatedAt  time.Time `json:"timestamp" gorm:"not null"`
}
