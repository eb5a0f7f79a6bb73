package dto

import (
	"time"

	"github.com/google/uuid"
)

type MemoryResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    string    `json:"userId"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      string    `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateMemoryRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	Category string `json:"category" validate:"omitempty,oneof=general personal work health learning"`
	Tags     string `json:"tags" validate:"max=500"`
	IsPinned bool   `json:"isPinned"`
}

type UpdateMemoryRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
