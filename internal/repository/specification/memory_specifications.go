package specification

import (
	"swadesh-ai-be/internal/entity"

	"gorm.io/gorm"
)

type ByCategory struct {
	Category entity.MemoryCategory
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", string(s.Category))
}
