package dto

import "time"

// LoginResult is what a finished sign-in hands back to the HTTP layer.
type LoginResult struct {
	User      *UserResponse
	Token     string
	ExpiresAt time.Time
}

// GoogleProfile is the subset of the userinfo payload we persist.
type GoogleProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}
