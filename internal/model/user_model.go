package model

import "time"

type User struct {
	Id              string    `gorm:"type:varchar(255);primaryKey"`
	Email           *string   `gorm:"type:varchar(255);uniqueIndex"`
	FirstName       string    `gorm:"type:varchar(255)"`
	LastName        string    `gorm:"type:varchar(255)"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:text"`
	SetupCompleted  bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Memories []Memory `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
