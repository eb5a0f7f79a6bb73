// Package redis stores sessions in Redis so they survive restarts and are
// shared between instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/contract"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "swadesh:session:"

type SessionRepository struct {
	rdb *goredis.Client
}

func NewSessionRepository(rdb *goredis.Client) contract.SessionRepository {
	return &SessionRepository{rdb: rdb}
}

// NewClient parses url as a redis:// URL, falling back to a bare host:port.
func NewClient(url string) *goredis.Client {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		opt = &goredis.Options{Addr: url}
	}
	return goredis.NewClient(opt)
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+session.Id, payload, ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := r.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, keyPrefix+id).Err()
}
