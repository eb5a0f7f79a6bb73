package specification

import "gorm.io/gorm"

// ByUserID filters the users table by its external subject id.
type ByUserID struct {
	ID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type UserOwnedBy struct {
	UserID string
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
