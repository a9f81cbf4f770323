package models

import "time"

type Workout struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Name        string    `gorm:"not null" json:"name"`
	Type        string    `gorm:"not null" json:"type"`
	DurationMin int       `gorm:"not null" json:"durationMin"`
	Notes       string    `json:"notes,omitempty"`
	LoggedAt    time.Time `gorm:"index;not null" json:"loggedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
