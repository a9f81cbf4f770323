package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

type ReportSummary struct {
	WorkoutsCompleted int     `json:"workoutsCompleted"`
	StudyHours        float64 `json:"studyHours"`
	AvgSleepHours     float64 `json:"avgSleepHours"`
	AvgDailyCalories  int     `json:"avgDailyCalories"`
	TotalCalories     int     `json:"totalCalories"`
}

type WeeklyReport struct {
	WeekStart     time.Time             `json:"weekStart"`
	WeekEnd       time.Time             `json:"weekEnd"`
	Goal          *models.Goal          `json:"goal"`
	Summary       ReportSummary         `json:"summary"`
	Workouts      []models.Workout      `json:"workouts"`
	StudySessions []models.StudySession `json:"studySessions"`
	SleepLogs     []models.SleepLog     `json:"sleepLogs"`
	CalorieLogs   []models.CalorieLog   `json:"calorieLogs"`
}

// Weekly builds the report for the week weekOffset weeks before now's week.
// The five fetches are independent and run concurrently; any failure fails
// the whole report.
func (s *ReportService) Weekly(ctx context.Context, userID uint, weekOffset int, now time.Time) (*WeeklyReport, error) {
	weekStart, weekEnd := weekWindow(now, weekOffset)

	report := &WeeklyReport{
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		Workouts:      make([]models.Workout, 0),
		StudySessions: make([]models.StudySession, 0),
		SleepLogs:     make([]models.SleepLog, 0),
		CalorieLogs:   make([]models.CalorieLog, 0),
	}

	inWeek := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, weekStart, weekEnd).
			Order("logged_at ASC")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The report never materializes a default goal; absent stays null.
		var goal models.Goal
		err := s.db.WithContext(gctx).Where("user_id = ?", userID).First(&goal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		report.Goal = &goal
		return nil
	})
	g.Go(func() error {
		return inWeek(s.db.WithContext(gctx)).Find(&report.Workouts).Error
	})
	g.Go(func() error {
		return inWeek(s.db.WithContext(gctx)).Find(&report.StudySessions).Error
	})
	g.Go(func() error {
		return inWeek(s.db.WithContext(gctx)).Find(&report.SleepLogs).Error
	})
	g.Go(func() error {
		return inWeek(s.db.WithContext(gctx)).Find(&report.CalorieLogs).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	studyHours := 0.0
	for _, ss := range report.StudySessions {
		studyHours += float64(ss.DurationMin) / 60
	}

	avgSleep := 0.0
	if len(report.SleepLogs) > 0 {
		for _, sl := range report.SleepLogs {
			avgSleep += sl.Hours
		}
		avgSleep /= float64(len(report.SleepLogs))
	}

	totalCalories := 0
	for _, cl := range report.CalorieLogs {
		totalCalories += cl.Calories
	}

	report.Summary = ReportSummary{
		WorkoutsCompleted: len(report.Workouts),
		StudyHours:        round1(studyHours),
		AvgSleepHours:     round1(avgSleep),
		// Fixed divisor of 7, not days-with-data; dashboard and report agree
		// on this convention.
		AvgDailyCalories: int(math.Round(float64(totalCalories) / 7)),
		TotalCalories:    totalCalories,
	}
	return report, nil
}
