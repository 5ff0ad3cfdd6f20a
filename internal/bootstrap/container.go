package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"smart-trolley-be/internal/config"
	"smart-trolley-be/internal/controller"
	"smart-trolley-be/internal/handler"
	"smart-trolley-be/internal/pkg/logger"
	"smart-trolley-be/internal/repository/memory"
	"smart-trolley-be/internal/service"
	"smart-trolley-be/internal/websocket"
	"smart-trolley-be/pkg/catalog"
	"smart-trolley-be/pkg/store"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	ListController      controller.IListController
	MapController       controller.IMapController
	CheckoutController  controller.ICheckoutController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Voice
	VoiceHandler *handler.VoiceHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Store Data (layout and catalog must be consistent before serving)
	layout := loadLayout(cfg)
	cat := loadCatalog(cfg)
	if err := layout.Validate(); err != nil {
		log.Fatalf("[FATAL] Invalid store layout: %v", err)
	}
	if err := cat.Validate(layout); err != nil {
		log.Fatalf("[FATAL] Invalid catalog: %v", err)
	}
	log.Printf("[INFO] Store data loaded: %d sections, %d catalog items", len(layout.Sections), len(cat.Entries))

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. Infrastructure
	// Redis is optional; without it the hub only serves local clients.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/voice.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.EventsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EventsTopic,
		wsHub,
		sysLogger,
	)

	assistantService := service.NewAssistantService(sessionRepo, layout, cat, publisherService, sysLogger)
	listService := service.NewListService(sessionRepo, layout, cat, publisherService, sysLogger)
	mapService := service.NewMapService(sessionRepo, layout)
	checkoutService := service.NewCheckoutService(sessionRepo, cfg.Payment, publisherService, sysLogger)

	// 6. Controllers & Handlers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		ListController:      controller.NewListController(listService),
		MapController:       controller.NewMapController(mapService),
		CheckoutController:  controller.NewCheckoutController(checkoutService),
		ConsumerService:     consumerService,
		VoiceHandler:        handler.NewVoiceHandler(assistantService, wsHub, wsLogger),
		WebSocketHub:        wsHub,
	}
}

func loadLayout(cfg *config.Config) *store.Layout {
	if cfg.Store.LayoutPath == "" {
		return store.DefaultLayout()
	}
	layout, err := store.LoadLayout(cfg.Store.LayoutPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load store layout from %s: %v", cfg.Store.LayoutPath, err)
	}
	return layout
}

func loadCatalog(cfg *config.Config) *catalog.Catalog {
	if cfg.Store.CatalogPath == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(cfg.Store.CatalogPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load catalog from %s: %v", cfg.Store.CatalogPath, err)
	}
	return cat
}
