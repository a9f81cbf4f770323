package models

import "time"

type StudySession struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Subject     string    `gorm:"not null" json:"subject"`
	DurationMin int       `gorm:"not null" json:"durationMin"`
	Notes       string    `json:"notes,omitempty"`
	LoggedAt    time.Time `gorm:"index;not null" json:"loggedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
