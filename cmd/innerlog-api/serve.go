package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/innerlog/innerlog-api/internal/cache"
	"github.com/innerlog/innerlog-api/internal/config"
	"github.com/innerlog/innerlog-api/internal/handlers"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/middleware"
	"github.com/innerlog/innerlog-api/internal/repository"
	"github.com/innerlog/innerlog-api/internal/service"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// A missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(newLogger(cfg.Log))
	log := logger.Default()

	log.Info("starting Innerlog API server",
		logger.String("env", cfg.Server.Env),
		logger.String("records_url", cfg.Records.URL))

	// Records backend client
	recordsClient := recordstore.NewClient(cfg.Records.URL, cfg.Records.ServiceKey)

	// Local view-selection store
	sessionDB, err := repository.OpenViewSelectionDB(cfg.Session.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	// Insights cache; a nil cache disables caching
	insightsCache, err := cache.NewInsightsCache(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	if err != nil {
		log.Warn("insights cache unavailable, continuing without it", logger.Err(err))
	}

	// Initialize repositories
	emotionRepo := repository.NewEmotionRepository(recordsClient)
	thoughtRepo := repository.NewThoughtRepository(recordsClient)
	journalRepo := repository.NewJournalRepository(recordsClient)
	goalRepo := repository.NewGoalRepository(recordsClient)
	practiceRepo := repository.NewPracticeRepository(recordsClient)
	userRepo := repository.NewUserRepository(recordsClient)
	selectionRepo := repository.NewViewSelectionRepository(sessionDB)

	// Initialize services
	sessionService := service.NewSessionService(selectionRepo, userRepo)
	insightsService := service.NewInsightsService(emotionRepo, thoughtRepo, journalRepo, goalRepo, practiceRepo, insightsCache)
	trendsService := service.NewTrendsService(emotionRepo, journalRepo, practiceRepo)
	recordsService := service.NewRecordsService(emotionRepo, thoughtRepo, journalRepo, goalRepo, practiceRepo)

	// Initialize handlers
	insightsHandler := handlers.NewInsightsHandler(insightsService, sessionService)
	trendsHandler := handlers.NewTrendsHandler(trendsService, sessionService)
	recordsHandler := handlers.NewRecordsHandler(recordsService, sessionService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(recordsClient))
	{
		// Record lists
		v1.GET("/emotions", recordsHandler.ListEmotions)
		v1.GET("/thoughts", recordsHandler.ListThoughts)
		v1.GET("/journals", recordsHandler.ListJournals)
		v1.GET("/goals", recordsHandler.ListGoals)
		v1.GET("/practice-results", recordsHandler.ListPracticeResults)

		// Aggregated insights
		v1.GET("/insights/summary", insightsHandler.GetSummary)

		// Trend series
		v1.GET("/trends/mood", trendsHandler.GetMoodTrend)
		v1.GET("/trends/practice", trendsHandler.GetPracticeTrend)
		v1.GET("/trends/journal", trendsHandler.GetJournalTrend)

		// Viewing-client selection
		session := v1.Group("/session")
		session.Use(middleware.RateLimitSession())
		{
			session.GET("/viewing-client", sessionHandler.GetViewingClient)
			session.PUT("/viewing-client", sessionHandler.SetViewingClient)
			session.DELETE("/viewing-client", sessionHandler.ClearViewingClient)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// newLogger builds the configured logging backend. Zap is used when asked
// for explicitly or when file rotation is configured; slog otherwise.
func newLogger(cfg config.LogConfig) logger.Logger {
	logCfg := logger.Config{
		Level:  logger.ParseLevel(cfg.Level),
		Format: cfg.Format,
		File:   cfg.File,
	}
	if cfg.Backend == "zap" || cfg.File != "" {
		return logger.NewZapLogger(logCfg)
	}
	return logger.NewSlogLogger(logCfg)
}
