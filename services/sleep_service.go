package services

import (
	"time"

	"github.com/JaiyeofGod/Dualforce/models"

	"gorm.io/gorm"
)

type SleepService struct{ db *gorm.DB }

func NewSleepService(db *gorm.DB) *SleepService { return &SleepService{db: db} }

func (s *SleepService) List(userID uint, f LogFilter) ([]models.SleepLog, error) {
	logs := make([]models.SleepLog, 0)
	err := f.scope(s.db.Where("user_id = ?", userID)).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func (s *SleepService) Create(sl *models.SleepLog) error {
	if sl.LoggedAt.IsZero() {
		sl.LoggedAt = time.Now()
	}
	if sl.Quality == 0 {
		sl.Quality = 3
	}
	if err := s.db.Create(sl).Error; err != nil {
		return err
	}
	EmitLogEvent(sl.UserID, "sleep.created", sl)
	return nil
}

func (s *SleepService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SleepLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	EmitLogEvent(userID, "sleep.deleted", map[string]uint{"id": id})
	return nil
}
