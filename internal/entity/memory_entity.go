package entity

import (
	"time"

	"github.com/google/uuid"
)

type MemoryCategory string

const (
	MemoryCategoryGeneral  MemoryCategory = "general"
	MemoryCategoryPersonal MemoryCategory = "personal"
	MemoryCategoryWork     MemoryCategory = "work"
	MemoryCategoryHealth   MemoryCategory = "health"
	MemoryCategoryLearning MemoryCategory = "learning"
)

// ParseMemoryCategory maps free text onto the closed category set.
// Empty input means general; anything else unknown is rejected.
func ParseMemoryCategory(s string) (MemoryCategory, bool) {
	switch MemoryCategory(s) {
	case "", MemoryCategoryGeneral:
		return MemoryCategoryGeneral, true
	case MemoryCategoryPersonal:
		return MemoryCategoryPersonal, true
	case MemoryCategoryWork:
		return MemoryCategoryWork, true
	case MemoryCategoryHealth:
		return MemoryCategoryHealth, true
	case MemoryCategoryLearning:
		return MemoryCategoryLearning, true
	default:
		return "", false
	}
}

type Memory struct {
	Id        uuid.UUID
	UserId    string
	Content   string
	Category  MemoryCategory
	Tags      string
	IsPinned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy is the ownership check applied before every read, update and delete.
func (m *Memory) OwnedBy(userId string) bool {
	return m != nil && m.UserId == userId
}
