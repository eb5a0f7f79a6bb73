package service

import (
	"context"
	"time"

	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/internal/dto"
)

// Pinger reports whether the database answers. nil means no database.
type Pinger func(ctx context.Context) error

type IHealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

type healthService struct {
	startedAt  time.Time
	ping       Pinger
	generation IGenerationService
}

func NewHealthService(startedAt time.Time, ping Pinger, generation IGenerationService) IHealthService {
	return &healthService{startedAt: startedAt, ping: ping, generation: generation}
}

func (s *healthService) Check(ctx context.Context) *dto.HealthResponse {
	db := false
	if s.ping != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		db = s.ping(pingCtx) == nil
		cancel()
	}

	return &dto.HealthResponse{
		Status:    "ok",
		App:       config.AppName,
		Version:   config.AppVersion,
		Uptime:    int64(time.Since(s.startedAt).Seconds()),
		DB:        db,
		AI:        s.generation.Available(),
		Timestamp: time.Now().UTC(),
	}
}
