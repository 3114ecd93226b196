// File: fixdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixdesk/config"
	fixcron "fixdesk/cron"
	"fixdesk/handlers"
	"fixdesk/middleware"
	"fixdesk/routes"
	"fixdesk/services/conversation"
	"fixdesk/services/detection"
	"fixdesk/services/ticket"
	"fixdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Gateway to the upstream ticket API.
	gateway := ticket.NewHTTPGateway()

	// Session storage: Redis when configured, in-memory otherwise.
	sessionTTL := time.Duration(config.AppConfig.ChatSessionTTLMin) * time.Minute
	var store conversation.SessionStore
	var memStore *conversation.MemorySessionStore
	var redisClients []*redis.Client
	if config.AppConfig.RedisAddr != "" {
		utils.InitSessionCache()
		utils.InitAuthCache()
		store = conversation.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
		redisClients = []*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient()}
	} else {
		memStore = conversation.NewMemorySessionStore(sessionTTL)
		store = memStore
		logger.Warn("main: REDIS_ADDR is empty, chat sessions are held in process memory")
	}

	// Services.
	detector := &detection.DefaultDetectionService{Gateway: gateway}
	chatService := &conversation.DefaultChatService{
		Store:    store,
		Detector: detector,
		Gateway:  gateway,
	}

	// The debouncer coalesces keystroke-driven remote detection and
	// delivers results onto the owning chat session.
	debouncer := detection.NewDebouncer(
		time.Duration(config.AppConfig.DetectionDebounceMs)*time.Millisecond,
		config.AppConfig.DetectionMinTextLength,
		config.AppConfig.DetectionEnabled,
		detection.RealClock(),
		func(sessionID, text string) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			result := detector.RemoteDetect(ctx, text)
			if err := chatService.RecordRemoteDetection(ctx, sessionID, result); err != nil {
				logger.Sugar().Warnf("main: failed to record remote detection: %v", err)
			}
		},
	)

	// Handlers.
	chatHandler := handlers.NewChatHandler(chatService, logger)
	chatHandler.Debouncer = debouncer
	detectionHandler := handlers.NewDetectionHandler(detector, debouncer, chatService, logger)
	ticketHandler := handlers.NewTicketHandler(gateway, logger)

	handlerBundle := &handlers.HandlerBundle{
		// Chat endpoints.
		StartChatSessionHandler:  chatHandler.StartSessionHandler,
		ChatMessageHandler:       chatHandler.MessageHandler,
		ChatActionHandler:        chatHandler.ActionHandler,
		CancelChatSessionHandler: chatHandler.CancelSessionHandler,

		// Detection endpoints.
		ClassifyHandler:       detectionHandler.ClassifyHandler,
		ScheduleRemoteHandler: detectionHandler.ScheduleRemoteHandler,
		LatestRemoteHandler:   detectionHandler.LatestRemoteHandler,

		// Ticket form endpoints.
		CreateTicketHandler: ticketHandler.CreateTicketHandler,
		SuggestHandler:      ticketHandler.SuggestHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	// Background maintenance: health probe + session sweep.
	maintenance := fixcron.StartMaintenanceJobs(gateway, redisClients, memStore)
	defer maintenance.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
