package models

import "time"

// Targets seeded for users who have never set goals.
const (
	DefaultWeeklyWorkouts     = 3
	DefaultWeeklyStudyHours   = 10
	DefaultDailySleepHours    = 8
	DefaultDailyCalorieTarget = 2000
)

// Goal holds each user's weekly/daily targets. One row per user.
type Goal struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"uniqueIndex;not null" json:"userId"`
	WeeklyWorkouts     int       `json:"weeklyWorkouts"`
	WeeklyStudyHours   float64   `json:"weeklyStudyHours"`
	DailySleepHours    float64   `json:"dailySleepHours"`
	DailyCalorieTarget int       `json:"dailyCalorieTarget"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func DefaultGoal(userID uint) Goal {
	return Goal{
		UserID:             userID,
		WeeklyWorkouts:     DefaultWeeklyWorkouts,
		WeeklyStudyHours:   DefaultWeeklyStudyHours,
		DailySleepHours:    DefaultDailySleepHours,
		DailyCalorieTarget: DefaultDailyCalorieTarget,
	}
}
