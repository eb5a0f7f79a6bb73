package contract

import (
	"context"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/specification"
)

type UserRepository interface {
	// Upsert inserts the user or, on id conflict, refreshes the mutable profile fields.
	Upsert(ctx context.Context, user *entity.User) error
	MarkSetupCompleted(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
