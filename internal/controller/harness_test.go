package controller_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/internal/controller"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/pkg/serverutils"
	"swadesh-ai-be/internal/pkg/sessiontoken"
	"swadesh-ai-be/internal/repository/memory"
	"swadesh-ai-be/internal/repository/unitofwork"
	"swadesh-ai-be/internal/server"
	"swadesh-ai-be/internal/service"
	"swadesh-ai-be/pkg/events"
	"swadesh-ai-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var nopLog = logger.NewNopLogger()

type stubProvider struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []llm.Request
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Generate(ctx context.Context, req llm.Request, opts ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, req)
	return p.reply, p.err
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *stubProvider) last() llm.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[len(p.calls)-1]
}

type harness struct {
	app      *fiber.App
	sessions service.ISessionService
}

// newHarness wires the full HTTP stack over store. A nil provider leaves
// generation unconfigured.
func newHarness(t *testing.T, store unitofwork.RepositoryFactory, provider llm.LLMProvider) *harness {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{ClientURL: "/", CorsAllowedOrigins: "http://localhost:5173"},
	}
	sessions := service.NewSessionService(
		memory.NewSessionRepository(time.Hour),
		sessiontoken.NewCodec("test-secret", "swadesh-ai"),
		time.Hour,
		nopLog,
	)
	generation := service.NewGenerationService(provider, time.Second, nopLog)
	publisher := events.Discard{}

	app := server.NewApp(cfg, nopLog, service.NewIdentityResolver(sessions, store, nopLog),
		controller.NewHealthController(service.NewHealthService(time.Now(), nil, generation)),
		controller.NewAuthController(service.NewAuthService(cfg, store, sessions, publisher, nopLog), cfg.App.ClientURL, false, nopLog),
		controller.NewUserController(service.NewUserService(store, publisher, nopLog)),
		controller.NewMemoryController(service.NewMemoryService(store, publisher, nopLog)),
		controller.NewChatController(service.NewChatService(service.NewMemoryContextAssembler(store), generation, nopLog)),
		controller.NewToolController(service.NewToolService(generation, nopLog)),
	)
	return &harness{app: app, sessions: sessions}
}

// login issues a session for userId and returns its token.
func (h *harness) login(t *testing.T, userId string) string {
	t.Helper()
	token, _, err := h.sessions.Issue(context.Background(), userId)
	require.NoError(t, err)
	return token
}

type call struct {
	method  string
	path    string
	body    string
	token   string
	guest   bool
	headers map[string]string
}

func (h *harness) do(t *testing.T, c call) *http.Response {
	t.Helper()
	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}
	req := httptest.NewRequest(c.method, c.path, body)
	if c.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: serverutils.SessionCookieName, Value: c.token})
	}
	if c.guest {
		req.Header.Set(serverutils.GuestModeHeader, "true")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func errorMessage(t *testing.T, resp *http.Response) string {
	return decode[serverutils.ErrorBody](t, resp).Error
}
