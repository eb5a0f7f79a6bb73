package contract

import (
	"context"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MemoryRepository interface {
	Create(ctx context.Context, memory *entity.Memory) error
	Update(ctx context.Context, memory *entity.Memory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Memory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Memory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
