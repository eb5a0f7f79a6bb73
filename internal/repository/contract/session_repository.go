package contract

import (
	"context"

	"swadesh-ai-be/internal/entity"
)

// SessionRepository is a key/value store with expiry. Get returns (nil, nil)
// for unknown or expired ids.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
