package models

import "time"

type SleepLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Hours     float64   `gorm:"not null" json:"hours"`
	Quality   int       `gorm:"default:3" json:"quality"` // 1-5
	Notes     string    `json:"notes,omitempty"`
	LoggedAt  time.Time `gorm:"index;not null" json:"loggedAt"`
	CreatedAt time.Time `json:"createdAt"`
}
