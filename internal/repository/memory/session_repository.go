package memory

import (
	"context"
	"time"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps sessions in process memory. Entries outlive a
// restart only when a shared store is configured instead.
func NewSessionRepository(defaultTTL time.Duration) contract.SessionRepository {
	return &SessionRepository{
		cache: cache.New(defaultTTL, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	cp := *session
	r.cache.Set(session.Id, &cp, ttl)
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	x, found := r.cache.Get(id)
	if !found {
		return nil, nil
	}
	session := *x.(*entity.Session)
	if session.Expired(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
