package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealOther     = "other"
)

type CalorieLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	FoodName  string    `gorm:"not null" json:"foodName"`
	Calories  int       `gorm:"not null" json:"calories"`
	Meal      string    `gorm:"size:16;default:other" json:"meal"`
	Notes     string    `json:"notes,omitempty"`
	LoggedAt  time.Time `gorm:"index;not null" json:"loggedAt"`
	CreatedAt time.Time `json:"createdAt"`
}
