package dto

import "time"

type UserResponse struct {
	Id              string    `json:"id"`
	Email           *string   `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	SetupCompleted  bool      `json:"setupCompleted"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ProfileResponse struct {
	User          *UserResponse `json:"user"`
	MemoriesCount int64         `json:"memoriesCount"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
