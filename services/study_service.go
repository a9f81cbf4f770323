package services

import (
	"time"

	"github.com/JaiyeofGod/Dualforce/models"

	"gorm.io/gorm"
)

type StudyService struct{ db *gorm.DB }

func NewStudyService(db *gorm.DB) *StudyService { return &StudyService{db: db} }

func (s *StudyService) List(userID uint, f LogFilter) ([]models.StudySession, error) {
	sessions := make([]models.StudySession, 0)
	err := f.scope(s.db.Where("user_id = ?", userID)).
		Order("logged_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (s *StudyService) Create(session *models.StudySession) error {
	if session.LoggedAt.IsZero() {
		session.LoggedAt = time.Now()
	}
	if err := s.db.Create(session).Error; err != nil {
		return err
	}
	EmitLogEvent(session.UserID, "study.created", session)
	return nil
}

func (s *StudyService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.StudySession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	EmitLogEvent(userID, "study.deleted", map[string]uint{"id": id})
	return nil
}
