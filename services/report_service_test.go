package services

import (
	"context"
	"testing"
	"time"

	"github.com/JaiyeofGod/Dualforce/models"
)

func newReportFixture(t *testing.T) (*ReportService, *GoalService, *testSeed) {
	t.Helper()
	db := newTestDB(t)
	seed := &testSeed{
		t:       t,
		workout: NewWorkoutService(db),
		study:   NewStudyService(db),
		sleep:   NewSleepService(db),
		calorie: NewCalorieService(db),
	}
	return NewReportService(db), NewGoalService(db), seed
}

func TestWeeklyReportSummary(t *testing.T) {
	svc, _, seed := newReportFixture(t)
	now := dashboardNow()
	weekStart, _ := weekWindow(now, 0)

	seed.addWorkout(1, weekStart.Add(8*time.Hour))
	seed.addWorkout(1, weekStart.AddDate(0, 0, 3))
	seed.sleepLog(1, 7, weekStart.Add(7*time.Hour))
	seed.sleepLog(1, 8, weekStart.AddDate(0, 0, 1).Add(7*time.Hour))
	// all 7000 kcal on a single day; the divisor stays 7
	seed.calories(1, 7000, weekStart.AddDate(0, 0, 2))

	report, err := svc.Weekly(context.Background(), 1, 0, now)
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}

	if !report.WeekStart.Equal(weekStart) {
		t.Fatalf("weekStart = %v, want %v", report.WeekStart, weekStart)
	}
	if !report.WeekEnd.Equal(weekStart.AddDate(0, 0, 7)) {
		t.Fatalf("weekEnd = %v, want %v", report.WeekEnd, weekStart.AddDate(0, 0, 7))
	}

	s := report.Summary
	if s.WorkoutsCompleted != 2 {
		t.Errorf("workoutsCompleted = %d, want 2", s.WorkoutsCompleted)
	}
	if s.StudyHours != 0 {
		t.Errorf("studyHours with no sessions = %v, want 0", s.StudyHours)
	}
	if s.AvgSleepHours != 7.5 {
		t.Errorf("avgSleepHours = %v, want 7.5", s.AvgSleepHours)
	}
	if s.TotalCalories != 7000 {
		t.Errorf("totalCalories = %d, want 7000", s.TotalCalories)
	}
	if s.AvgDailyCalories != 1000 {
		t.Errorf("avgDailyCalories = %d, want 1000", s.AvgDailyCalories)
	}

	if report.Goal != nil {
		t.Errorf("goal = %+v, want nil when the user never set one", report.Goal)
	}
	if report.StudySessions == nil || len(report.StudySessions) != 0 {
		t.Errorf("studySessions should be an empty list, got %v", report.StudySessions)
	}
}

func TestWeeklyReportListsAscending(t *testing.T) {
	svc, _, seed := newReportFixture(t)
	now := dashboardNow()
	weekStart, _ := weekWindow(now, 0)

	seed.addWorkout(1, weekStart.AddDate(0, 0, 4))
	seed.addWorkout(1, weekStart.Add(time.Hour))
	seed.addWorkout(1, weekStart.AddDate(0, 0, 2))

	report, err := svc.Weekly(context.Background(), 1, 0, now)
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	if len(report.Workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(report.Workouts))
	}
	for i := 1; i < len(report.Workouts); i++ {
		if report.Workouts[i].LoggedAt.Before(report.Workouts[i-1].LoggedAt) {
			t.Fatalf("workouts not ordered loggedAt asc")
		}
	}
}

func TestWeeklyReportOffsetSelectsPastWeek(t *testing.T) {
	svc, _, seed := newReportFixture(t)
	now := dashboardNow()
	thisWeek, _ := weekWindow(now, 0)
	lastWeek, _ := weekWindow(now, 1)

	seed.addWorkout(1, thisWeek.Add(9*time.Hour))
	seed.addWorkout(1, lastWeek.Add(9*time.Hour))
	seed.calories(1, 2100, lastWeek.AddDate(0, 0, 1))

	report, err := svc.Weekly(context.Background(), 1, 1, now)
	if err != nil {
		t.Fatalf("Weekly offset 1: %v", err)
	}

	if !report.WeekStart.Equal(lastWeek) {
		t.Fatalf("weekStart = %v, want %v", report.WeekStart, lastWeek)
	}
	if report.Summary.WorkoutsCompleted != 1 {
		t.Fatalf("workoutsCompleted = %d, want only last week's", report.Summary.WorkoutsCompleted)
	}
	if report.Summary.TotalCalories != 2100 {
		t.Fatalf("totalCalories = %d, want 2100", report.Summary.TotalCalories)
	}
	if report.Summary.AvgDailyCalories != 300 {
		t.Fatalf("avgDailyCalories = %d, want 300", report.Summary.AvgDailyCalories)
	}
}

func TestWeeklyReportIncludesExistingGoal(t *testing.T) {
	svc, goals, _ := newReportFixture(t)

	if _, err := goals.GetOrCreate(1); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	report, err := svc.Weekly(context.Background(), 1, 0, dashboardNow())
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	if report.Goal == nil || report.Goal.WeeklyWorkouts != models.DefaultWeeklyWorkouts {
		t.Fatalf("goal not included: %+v", report.Goal)
	}
}

func TestWeeklyReportStudyRounding(t *testing.T) {
	svc, _, seed := newReportFixture(t)
	now := dashboardNow()
	weekStart, _ := weekWindow(now, 0)

	seed.studySession(1, 100, weekStart.Add(10*time.Hour)) // 1.666..h
	seed.studySession(1, 50, weekStart.AddDate(0, 0, 1))   // 0.833..h

	report, err := svc.Weekly(context.Background(), 1, 0, now)
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	// 150 minutes = 2.5h exactly
	if report.Summary.StudyHours != 2.5 {
		t.Fatalf("studyHours = %v, want 2.5", report.Summary.StudyHours)
	}
}
