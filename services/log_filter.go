package services

import (
	"time"

	"gorm.io/gorm"
)

// LogFilter bounds a list query on loggedAt. Nil bounds are open; From is
// inclusive-from-below, To inclusive-from-above.
type LogFilter struct {
	From *time.Time
	To   *time.Time
}

func (f LogFilter) scope(tx *gorm.DB) *gorm.DB {
	if f.From != nil {
		tx = tx.Where("logged_at >= ?", *f.From)
	}
	if f.To != nil {
		tx = tx.Where("logged_at <= ?", *f.To)
	}
	return tx
}
