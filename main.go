package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"smart-life-agent/internal/ai"
	"smart-life-agent/internal/calendar"
	"smart-life-agent/internal/config"
	"smart-life-agent/internal/extractor"
	"smart-life-agent/internal/gmail"
	"smart-life-agent/internal/handler"
	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/repository"
	"smart-life-agent/internal/repository/memory"
	"smart-life-agent/internal/repository/postgres"
	"smart-life-agent/internal/router"
	"smart-life-agent/internal/service"
	"smart-life-agent/internal/sse"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("Config validation failed:", err)
	}

	// Initialize logger
	appLogger := logger.New()

	// Initialize repositories (postgres when DATABASE_URL is set, in-memory otherwise)
	var userRepo repository.UserRepository
	var taskRepo repository.TaskRepository

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := postgres.InitializeDatabase(db); err != nil {
			log.Fatal("Failed to initialize database:", err)
		}

		userRepo = postgres.NewPostgresUserRepository(db)
		taskRepo = postgres.NewPostgresTaskRepository(db)

		appLogger.Info("Using PostgreSQL repositories")
	} else {
		userRepo = memory.NewInMemoryUserRepository()
		taskRepo = memory.NewInMemoryTaskRepository()

		appLogger.Info("Using in-memory repositories")
	}

	// Initialize AI client and the extraction stage built on it
	aiClient := ai.NewAIClient(cfg.AIKey, appLogger)
	taskExtractor := extractor.New(aiClient, appLogger)

	// Provider clients that resolve a per-user access token on every call
	gmailClient := NewUserSpecificGmailClient(userRepo, appLogger)
	calendarClient := NewUserSpecificCalendarClient(userRepo, appLogger)

	// Initialize services
	authService := service.NewAuthService(userRepo, appLogger)
	taskService := service.NewTaskService(taskRepo, appLogger)
	chatService := service.NewChatService(aiClient, appLogger)
	agentService := service.NewAgentService(taskService, gmailClient, calendarClient, taskExtractor, appLogger)

	// Initialize SSE manager for real-time task updates
	sseManager := sse.NewSSEManager(appLogger)

	// Background agent runs for connected users
	agentRunJob := sse.NewAgentRunJob(agentService, userRepo, sseManager, appLogger)

	// Initialize handlers
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	authHandler := handler.NewAuthHandler(authService, cfg, e.Logger)
	agentHandler := handler.NewAgentHandler(agentService, calendarClient, authHandler, sseManager, e.Logger)
	taskHandler := handler.NewTaskHandler(taskService, authHandler, e.Logger)
	chatHandler := handler.NewChatHandler(chatService, authHandler, e.Logger)

	router.SetupRoutes(e, authHandler, agentHandler, taskHandler, chatHandler)

	// Start the periodic agent job in a separate goroutine
	go agentRunJob.Start()

	// Start server
	appLogger.Info("Starting server on port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		appLogger.Error("Failed to start server:", err)
		agentRunJob.Stop()
		sseManager.Close()
	}
}

// UserSpecificGmailClient resolves the user's stored access token and builds
// a Gmail client with it for each call.
type UserSpecificGmailClient struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

func NewUserSpecificGmailClient(userRepo repository.UserRepository, logger *logger.Logger) service.GmailClient {
	return &UserSpecificGmailClient{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (u *UserSpecificGmailClient) FetchRecentEmails(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
	token, err := u.accessToken(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	gmailClient, err := gmail.NewGmailClient(token, u.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail client: %w", err)
	}

	return gmailClient.FetchRecentEmails(ctx, userEmail, maxResults)
}

func (u *UserSpecificGmailClient) accessToken(ctx context.Context, userEmail string) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		return "", fmt.Errorf("user not found or access token not available for email: %s", userEmail)
	}
	if user.AccessToken == "" {
		return "", fmt.Errorf("access token not available for user: %s", userEmail)
	}
	return user.AccessToken, nil
}

// UserSpecificCalendarClient resolves the user's stored access token and
// builds a Calendar client with it for each call.
type UserSpecificCalendarClient struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

func NewUserSpecificCalendarClient(userRepo repository.UserRepository, logger *logger.Logger) service.CalendarClient {
	return &UserSpecificCalendarClient{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (u *UserSpecificCalendarClient) FetchUpcomingEvents(ctx context.Context, userEmail string, timeMin, timeMax time.Time, maxResults int64) ([]*model.Event, error) {
	user, err := u.userRepo.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("user not found or access token not available for email: %s", userEmail)
	}
	if user.AccessToken == "" {
		return nil, fmt.Errorf("access token not available for user: %s", userEmail)
	}

	calendarClient, err := calendar.NewCalendarClient(user.AccessToken, u.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client: %w", err)
	}

	return calendarClient.FetchUpcomingEvents(ctx, userEmail, timeMin, timeMax, maxResults)
}
