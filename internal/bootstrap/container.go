package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/charley4805/project-pretzel/internal/config"
	"github.com/charley4805/project-pretzel/internal/controller"
	"github.com/charley4805/project-pretzel/internal/handler"
	"github.com/charley4805/project-pretzel/internal/pkg/logger"
	"github.com/charley4805/project-pretzel/internal/pkg/mailer"
	"github.com/charley4805/project-pretzel/internal/repository/memory"
	"github.com/charley4805/project-pretzel/internal/repository/unitofwork"
	"github.com/charley4805/project-pretzel/internal/service"
	"github.com/charley4805/project-pretzel/internal/websocket"
	"github.com/charley4805/project-pretzel/pkg/llm/factory"

	pktNats "github.com/charley4805/project-pretzel/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	AssistantController    controller.IAssistantController
	NotificationController controller.INotificationController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WsHandler    *handler.WsHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider
	llmCfg := factory.Config{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  cfg.Ai.OpenAIBaseURL,
		APIKey:   cfg.Ai.OpenAIAPIKey,
	}
	if cfg.Ai.LLMProvider == "ollama" {
		llmCfg.BaseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(llmCfg)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory membership lookup cache
	membershipCache := memory.NewMembershipCache()

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.DigestTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.DigestTopic,
		uowFactory,
		emailService,
	)

	authService := service.NewAuthService(uowFactory, natsPub)
	assistantService := service.NewAssistantService(
		uowFactory,
		llmProvider,
		membershipCache,
		publisherService,
		natsPub,
	)

	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, sysLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	wsHandler := handler.NewWsHandler(wsHub, wsLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		AssistantController:    controller.NewAssistantController(assistantService),
		NotificationController: controller.NewNotificationController(notifService),

		ConsumerService: consumerService,

		WsHandler:    wsHandler,
		WebSocketHub: wsHub,
	}
}
