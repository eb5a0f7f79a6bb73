package bootstrap

import (
	"context"
	"errors"
	"time"

	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/internal/controller"
	"swadesh-ai-be/internal/model"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/pkg/sessiontoken"
	"swadesh-ai-be/internal/repository/contract"
	"swadesh-ai-be/internal/repository/memory"
	sessionRedis "swadesh-ai-be/internal/repository/redis"
	"swadesh-ai-be/internal/repository/unitofwork"
	"swadesh-ai-be/internal/service"
	"swadesh-ai-be/pkg/database"
	"swadesh-ai-be/pkg/events"
	"swadesh-ai-be/pkg/llm"
	"swadesh-ai-be/pkg/llm/factory"
	pktNats "swadesh-ai-be/pkg/nats"

	"gorm.io/gorm"
)

const sessionIssuer = "swadesh-ai"

type Container struct {
	Logger           logger.ILogger
	IdentityResolver service.IIdentityResolver

	// Controllers
	HealthController controller.IHealthController
	AuthController   controller.IAuthController
	UserController   controller.IUserController
	MemoryController controller.IMemoryController
	ChatController   controller.IChatController
	ToolController   controller.IToolController

	// Background Services (Exposed for main.go to run)
	ActivityConsumer service.IActivityConsumerService

	closers []func()
}

// NewContainer wires every dependency. A nil db runs the service without
// storage: memory and sign-in endpoints report storage unavailable while chat
// keeps working on explicit context.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Storage
	var uowFactory unitofwork.RepositoryFactory
	var ping service.Pinger
	if db != nil {
		if err := database.Migrate(db, model.All()...); err != nil {
			sysLogger.Error("BOOT", "Schema migration failed", map[string]interface{}{"error": err.Error()})
		}
		uowFactory = unitofwork.NewRepositoryFactory(db)
		ping = func(ctx context.Context) error { return database.PingContext(ctx, db) }
	} else {
		sysLogger.Warn("BOOT", "DATABASE_URL not set, running without storage", nil)
	}

	// 2. Sessions
	var sessionRepo contract.SessionRepository
	if cfg.Session.RedisURL != "" {
		rdb := sessionRedis.NewClient(cfg.Session.RedisURL)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("BOOT", "Redis unreachable, sessions will fail until it recovers", map[string]interface{}{"error": err.Error()})
		}
		sessionRepo = sessionRedis.NewSessionRepository(rdb)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	} else {
		sessionRepo = memory.NewSessionRepository(cfg.Session.TTL)
	}
	codec := sessiontoken.NewCodec(cfg.Session.Secret, sessionIssuer)
	sessionService := service.NewSessionService(sessionRepo, codec, cfg.Session.TTL, sysLogger)

	// 3. Event Bus
	bus := events.NewBus(cfg.Events.ActivityTopic)
	c.closers = append(c.closers, func() { _ = bus.Close() })

	publishers := events.Fanout{bus}
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOT", "Failed to connect to NATS publisher", map[string]interface{}{"error": err.Error()})
		} else {
			publishers = append(publishers, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	c.closers = append(c.closers, func() { _ = activityLogger.Sync() })
	c.ActivityConsumer = service.NewActivityConsumerService(bus, activityLogger, sysLogger)

	// 4. Generation
	var provider llm.LLMProvider
	p, err := factory.NewLLMProvider(ctx, cfg.Ai)
	switch {
	case errors.Is(err, factory.ErrNotConfigured):
		sysLogger.Warn("BOOT", "No AI provider configured, AI endpoints will return 503", map[string]interface{}{"provider": cfg.Ai.Provider})
	case err != nil:
		sysLogger.Error("BOOT", "Failed to initialize AI provider", map[string]interface{}{"provider": cfg.Ai.Provider, "error": err.Error()})
	default:
		provider = p
		sysLogger.Info("BOOT", "Using AI provider", map[string]interface{}{"provider": p.Name()})
	}
	generationService := service.NewGenerationService(provider, cfg.Ai.GenerationTimeout, sysLogger)

	// 5. Services
	c.IdentityResolver = service.NewIdentityResolver(sessionService, uowFactory, sysLogger)
	assembler := service.NewMemoryContextAssembler(uowFactory)
	chatService := service.NewChatService(assembler, generationService, sysLogger)
	toolService := service.NewToolService(generationService, sysLogger)
	memoryService := service.NewMemoryService(uowFactory, publishers, sysLogger)
	userService := service.NewUserService(uowFactory, publishers, sysLogger)
	authService := service.NewAuthService(cfg, uowFactory, sessionService, publishers, sysLogger)
	healthService := service.NewHealthService(time.Now(), ping, generationService)

	// 6. Controllers
	c.HealthController = controller.NewHealthController(healthService)
	c.AuthController = controller.NewAuthController(authService, cfg.App.ClientURL, cfg.IsProduction(), sysLogger)
	c.UserController = controller.NewUserController(userService)
	c.MemoryController = controller.NewMemoryController(memoryService)
	c.ChatController = controller.NewChatController(chatService)
	c.ToolController = controller.NewToolController(toolService)

	return c
}

// Close releases connections in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
