package services

import (
	"time"

	"github.com/JaiyeofGod/Dualforce/models"

	"gorm.io/gorm"
)

type CalorieService struct{ db *gorm.DB }

func NewCalorieService(db *gorm.DB) *CalorieService { return &CalorieService{db: db} }

func (s *CalorieService) List(userID uint, f LogFilter) ([]models.CalorieLog, error) {
	logs := make([]models.CalorieLog, 0)
	err := f.scope(s.db.Where("user_id = ?", userID)).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func (s *CalorieService) Create(cl *models.CalorieLog) error {
	if cl.LoggedAt.IsZero() {
		cl.LoggedAt = time.Now()
	}
	if cl.Meal == "" {
		cl.Meal = models.MealOther
	}
	if err := s.db.Create(cl).Error; err != nil {
		return err
	}
	EmitLogEvent(cl.UserID, "calorie.created", cl)
	return nil
}

func (s *CalorieService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CalorieLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	EmitLogEvent(userID, "calorie.deleted", map[string]uint{"id": id})
	return nil
}
