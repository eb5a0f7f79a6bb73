package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by a uuid primary key
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}
