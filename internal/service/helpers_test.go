package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/pkg/sessiontoken"
	"swadesh-ai-be/internal/repository/memory"
	"swadesh-ai-be/pkg/events"
	"swadesh-ai-be/pkg/llm"
)

var nopLog = logger.NewNopLogger()

type fakeProvider struct {
	mu    sync.Mutex
	reply string
	err   error
	delay time.Duration
	calls []llm.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, req llm.Request, opts ...llm.Option) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func (f *fakeProvider) lastCall(t *testing.T) llm.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("provider was not called")
	}
	return f.calls[len(f.calls)-1]
}

type recordingPublisher struct {
	mu  sync.Mutex
	got []events.Event
	err error
}

func (r *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, event)
	return r.err
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.got))
	for _, e := range r.got {
		out = append(out, e.EventType())
	}
	return out
}

func newSessions() ISessionService {
	return NewSessionService(
		memory.NewSessionRepository(time.Hour),
		sessiontoken.NewCodec("test-secret", "swadesh-ai"),
		time.Hour,
		nopLog,
	)
}

type forbiddenSessions struct {
	t *testing.T
}

func (f forbiddenSessions) Issue(ctx context.Context, userId string) (string, time.Time, error) {
	f.t.Fatal("session store was accessed")
	return "", time.Time{}, nil
}

func (f forbiddenSessions) Lookup(ctx context.Context, token string) (*entity.Session, error) {
	f.t.Fatal("session store was accessed")
	return nil, nil
}

func (f forbiddenSessions) Revoke(ctx context.Context, token string) error {
	f.t.Fatal("session store was accessed")
	return nil
}
