package entity

import "time"

// User is keyed by the external identity provider's stable subject id.
type User struct {
	Id              string
	Email           *string
	FirstName       string
	LastName        string
	ProfileImageURL *string
	SetupCompleted  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
