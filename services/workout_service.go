package services

import (
	"time"

	"github.com/JaiyeofGod/Dualforce/models"

	"gorm.io/gorm"
)

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

func (s *WorkoutService) List(userID uint, f LogFilter) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	err := f.scope(s.db.Where("user_id = ?", userID)).
		Order("logged_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Create(w *models.Workout) error {
	if w.LoggedAt.IsZero() {
		w.LoggedAt = time.Now()
	}
	if err := s.db.Create(w).Error; err != nil {
		return err
	}
	EmitLogEvent(w.UserID, "workout.created", w)
	return nil
}

// Delete removes the workout only when it belongs to userID; ownership and
// deletion share one predicate.
func (s *WorkoutService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Workout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	EmitLogEvent(userID, "workout.deleted", map[string]uint{"id": id})
	return nil
}
