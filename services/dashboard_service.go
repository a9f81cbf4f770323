package services

import (
	"errors"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db    *gorm.DB
	goals *GoalService
}

func NewDashboardService(db *gorm.DB, goals *GoalService) *DashboardService {
	return &DashboardService{db: db, goals: goals}
}

type TodaySnapshot struct {
	Calories       int                 `json:"calories"`
	SleepHours     *float64            `json:"sleepHours"`
	CalorieEntries []models.CalorieLog `json:"calorieEntries"`
}

type WeekSnapshot struct {
	Workouts   int64   `json:"workouts"`
	StudyHours float64 `json:"studyHours"`
}

type Dashboard struct {
	Goal  *models.Goal  `json:"goal"`
	Today TodaySnapshot `json:"today"`
	Week  WeekSnapshot  `json:"week"`
}

// Snapshot composes the today view (calories, latest sleep) and the
// Monday-start week rollup (workout count, study hours).
func (s *DashboardService) Snapshot(userID uint, now time.Time) (*Dashboard, error) {
	goal, err := s.goals.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	todayStart := dayStart(now)
	todayEnd := todayStart.Add(24 * time.Hour)
	weekStart, weekEnd := weekWindow(now, 0)

	entries := make([]models.CalorieLog, 0)
	if err := s.db.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, todayStart, todayEnd).
		Order("logged_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	caloriesTotal := 0
	for _, e := range entries {
		caloriesTotal += e.Calories
	}

	// Latest sleep log of the day wins; nil when none was logged.
	var sleepHours *float64
	var sleep models.SleepLog
	err = s.db.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, todayStart, todayEnd).
		Order("logged_at DESC, id DESC").
		First(&sleep).Error
	if err == nil {
		sleepHours = &sleep.Hours
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var workouts int64
	if err := s.db.Model(&models.Workout{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, weekStart, weekEnd).
		Count(&workouts).Error; err != nil {
		return nil, err
	}

	var durations []int
	if err := s.db.Model(&models.StudySession{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, weekStart, weekEnd).
		Pluck("duration_min", &durations).Error; err != nil {
		return nil, err
	}
	studyHours := 0.0
	for _, min := range durations {
		studyHours += float64(min) / 60
	}

	return &Dashboard{
		Goal: goal,
		Today: TodaySnapshot{
			Calories:       caloriesTotal,
			SleepHours:     sleepHours,
			CalorieEntries: entries,
		},
		Week: WeekSnapshot{
			Workouts:   workouts,
			StudyHours: round1(studyHours),
		},
	}, nil
}
