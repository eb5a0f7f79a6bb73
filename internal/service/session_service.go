package service

import (
	"context"
	"time"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/pkg/sessiontoken"
	"swadesh-ai-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ISessionService interface {
	// Issue stores a new session for userId and returns its signed token.
	Issue(ctx context.Context, userId string) (string, time.Time, error)
	// Lookup returns the live session behind token, or nil.
	Lookup(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
}

type sessionService struct {
	store  contract.SessionRepository
	codec  *sessiontoken.Codec
	ttl    time.Duration
	logger logger.ILogger
}

func NewSessionService(store contract.SessionRepository, codec *sessiontoken.Codec, ttl time.Duration, log logger.ILogger) ISessionService {
	return &sessionService{store: store, codec: codec, ttl: ttl, logger: log}
}

func (s *sessionService) Issue(ctx context.Context, userId string) (string, time.Time, error) {
	session := &entity.Session{
		Id:        uuid.NewString(),
		UserId:    userId,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return "", time.Time{}, err
	}

	token, err := s.codec.Sign(session.Id, userId, session.ExpiresAt)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, session.ExpiresAt, nil
}

func (s *sessionService) Lookup(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := s.codec.Parse(token)
	if err != nil {
		return nil, nil
	}

	session, err := s.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	// A token re-signed for another user must not ride on a live session id.
	if session == nil || session.UserId != claims.UserID {
		return nil, nil
	}
	return session, nil
}

func (s *sessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.codec.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, claims.SessionID); err != nil {
		s.logger.Warn("SESSION", "Failed to revoke session", map[string]interface{}{
			"session_id": claims.SessionID,
			"error":      err.Error(),
		})
		return err
	}
	return nil
}
