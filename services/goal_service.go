package services

import (
	"errors"

	"github.com/JaiyeofGod/Dualforce/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// GoalUpdate carries a partial update; nil fields keep their prior value.
type GoalUpdate struct {
	WeeklyWorkouts     *int
	WeeklyStudyHours   *float64
	DailySleepHours    *float64
	DailyCalorieTarget *int
}

func (u GoalUpdate) validate() error {
	if u.WeeklyWorkouts != nil && (*u.WeeklyWorkouts < 0 || *u.WeeklyWorkouts > 14) {
		return &ValidationError{Field: "weeklyWorkouts", Message: "must be between 0 and 14"}
	}
	if u.WeeklyStudyHours != nil && (*u.WeeklyStudyHours < 0 || *u.WeeklyStudyHours > 168) {
		return &ValidationError{Field: "weeklyStudyHours", Message: "must be between 0 and 168"}
	}
	if u.DailySleepHours != nil && (*u.DailySleepHours < 0 || *u.DailySleepHours > 24) {
		return &ValidationError{Field: "dailySleepHours", Message: "must be between 0 and 24"}
	}
	if u.DailyCalorieTarget != nil && *u.DailyCalorieTarget < 0 {
		return &ValidationError{Field: "dailyCalorieTarget", Message: "must be 0 or more"}
	}
	return nil
}

func (u GoalUpdate) apply(goal *models.Goal) {
	if u.WeeklyWorkouts != nil {
		goal.WeeklyWorkouts = *u.WeeklyWorkouts
	}
	if u.WeeklyStudyHours != nil {
		goal.WeeklyStudyHours = *u.WeeklyStudyHours
	}
	if u.DailySleepHours != nil {
		goal.DailySleepHours = *u.DailySleepHours
	}
	if u.DailyCalorieTarget != nil {
		goal.DailyCalorieTarget = *u.DailyCalorieTarget
	}
}

// GetOrCreate returns the user's goal, materializing the defaults on first
// read. The unique index on user_id keeps concurrent first reads from
// creating two rows; the loser of that race re-reads the winner's row.
func (s *GoalService) GetOrCreate(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err == nil {
		return &goal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	goal = models.DefaultGoal(userID)
	if createErr := s.db.Create(&goal).Error; createErr != nil {
		if rerr := s.db.Where("user_id = ?", userID).First(&goal).Error; rerr == nil {
			return &goal, nil
		}
		return nil, createErr
	}
	return &goal, nil
}

// Update applies a partial update. When no goal exists yet, omitted fields
// seed from the defaults rather than a prior value.
func (s *GoalService) Update(userID uint, u GoalUpdate) (*models.Goal, error) {
	if err := u.validate(); err != nil {
		return nil, err
	}

	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DefaultGoal(userID)
		u.apply(&goal)
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	u.apply(&goal)
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
