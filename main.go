package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"edusight-server/cache"
	"edusight-server/config"
	"edusight-server/db"
	"edusight-server/handlers"
	"edusight-server/ingestion"
	"edusight-server/llm"
	"edusight-server/logging"
	"edusight-server/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger, err := logging.Init(cfg.Log)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection pool
	pool, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	defer pool.Close()
	// Ensure database schema is set up (simple creation for demo)
	if err := db.CreateSchema(pool); err != nil {
		logger.Fatal("Error creating database schema", zap.Error(err))
	}

	analyzer := llm.NewAnalyzer(llm.NewOllamaProvider(llm.OllamaConfig{
		BaseURL: cfg.Ollama.BaseURL,
		Model:   cfg.Ollama.Model,
		APIKey:  cfg.Ollama.APIKey,
	}))

	deps := &handlers.Deps{
		Reports:    db.NewReportStore(pool),
		Questions:  db.NewQuestionStore(pool),
		Results:    db.NewDomainResultStore(pool),
		Analyzer:   analyzer,
		Cache:      cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL),
		Log:        logger,
		LLMTimeout: cfg.Ollama.Timeout,
	}

	// Load the question bank at startup; a broken bank is not fatal, the
	// analysis endpoints degrade to game-score-only output.
	ingestBank := func() {
		questions, err := ingestion.LoadQuestionBank(cfg.QuestionBankPath)
		if err != nil {
			logger.Warn("question bank ingestion failed", zap.Error(err))
			db.LogError(pool, "ingestion", cfg.QuestionBankPath, err.Error())
			return
		}
		if err := deps.Questions.ReplaceAll(context.Background(), questions); err != nil {
			logger.Error("question bank swap failed", zap.Error(err))
			return
		}
		logger.Info("question bank ingested", zap.Int("questions", len(questions)))
	}
	ingestBank()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.GET("/healthz", handlers.Healthz(deps))

	// API Routes (version 1)
	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.APIKeyAuth(cfg.APIKey))
	{
		apiV1.POST("/analyze", handlers.AnalyzeGame(deps))
		apiV1.POST("/analyze-advanced", handlers.AnalyzeAdvanced(deps))
		apiV1.POST("/analyze-early", handlers.AnalyzeEarly(deps))
		apiV1.POST("/signal", handlers.EvaluateSignal(deps))
		apiV1.POST("/skills/assess", handlers.AssessSkills(deps))
		apiV1.GET("/students/:name/reports", handlers.GetStudentReports(deps))
	}

	// Admin Routes
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer))
	admin.Use(middleware.RoleCheckMiddleware([]string{"admin", "teacher"}))
	{
		admin.GET("/reports", handlers.ListReports(deps))
		admin.POST("/ingest", handlers.TriggerIngestion(deps, cfg.QuestionBankPath))
	}

	// Periodic question bank refresh so edited YAML files get picked up
	// without a restart.
	go func() {
		ticker := time.NewTicker(cfg.IngestionInterval)
		defer ticker.Stop()
		for range ticker.C {
			logger.Info("running scheduled question bank refresh")
			ingestBank()
		}
	}()

	// Start the server
	srv := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}
	// Goroutine to gracefully shut down the server
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Fatal("server forced to shutdown", zap.Error(err))
		}
	}()
	logger.Info("edusight server starting", zap.String("addr", cfg.ServerPort))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server startup error", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
