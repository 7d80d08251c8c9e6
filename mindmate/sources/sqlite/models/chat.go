package models

import "time"

// ChatTurn is one completed user/assistant exchange. Failed exchanges are
// never written, so the table only holds turns the user actually saw.
type ChatTurn struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"index;type:varchar(255);not null"`
	User      User      `json:"-" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Response  string    `json:"response" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"timestamp" gorm:"not null"`
}
