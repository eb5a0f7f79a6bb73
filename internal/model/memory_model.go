package model

import (
	"time"

	"github.com/google/uuid"
)

type Memory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    string    `gorm:"type:varchar(255);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(32);not null;default:'general'"`
	Tags      string    `gorm:"type:text;not null;default:''"`
	IsPinned  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Memory) TableName() string {
	return "memories"
}

// All returns every model the schema migration manages, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Memory{},
	}
}
