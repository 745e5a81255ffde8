package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"recommendations-service/internal/catalog"
	"recommendations-service/internal/clients/gemini"
	"recommendations-service/internal/config"
	"recommendations-service/internal/handlers"
	"recommendations-service/internal/middleware"
	"recommendations-service/internal/repository"
	"recommendations-service/internal/services"
)

// @title Product Recommendations API
// @version 1.0.0
// @description Product recommendation search: AI-backed top-10 lists with a synthetic catalog fallback
// @termsOfService http://swagger.io/terms/

// @contact.name Recommendations API Support
// @contact.url http://www.example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8093
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client for search-path counters
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		redisOpts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (search stats will be disabled)", err)
		redisClient = nil
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Initialize repository
	statsRepo := repository.NewStatsRepository(redisClient)

	// Initialize the catalog pipeline
	classifier := catalog.NewClassifier()
	linkBuilder := catalog.NewLinkBuilder(catalog.AffiliateConfig{
		AmazonTag:         cfg.AmazonAffiliateID,
		WalmartCampaignID: cfg.WalmartAffiliateID,
	})
	synthesizer := catalog.NewSynthesizer(
		catalog.ParsePricingStrategy(cfg.PricingStrategy),
		linkBuilder,
		rand.NewSource(time.Now().UnixNano()),
	)

	// Initialize the Gemini searcher only if an API key is configured
	var searcher services.ProductSearcher
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), gemini.Config{
			APIKey:          cfg.GeminiAPIKey,
			Model:           cfg.GeminiModel,
			Timeout:         time.Duration(cfg.AISearchTimeoutSeconds) * time.Second,
			MaxOutputTokens: int32(cfg.AIMaxOutputTokens),
		})
		if err != nil {
			log.Printf("WARNING: Failed to initialize Gemini client: %v (serving synthetic results only)", err)
		} else {
			searcher = geminiClient
			log.Println("✓ Gemini search client initialized")
		}
	} else {
		log.Println("GEMINI_API_KEY not set, serving synthetic results only")
	}

	// Initialize service and handlers
	searchService := services.NewSearchService(classifier, synthesizer, linkBuilder, searcher, statsRepo, logger)
	searchHandler := handlers.NewSearchHandler(searchService, statsRepo, logger)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Health check endpoints
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.ReadinessCheck)

	// API routes
	api := router.Group("/api/v1")
	{
		search := api.Group("/search")
		{
			search.GET("", searchHandler.Search)
			search.POST("/filter", searchHandler.FilterProducts)
			search.GET("/stats", searchHandler.GetStats)
		}

		api.GET("/categories", searchHandler.GetCategories)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Recommendations service starting on port %s", port)
		if err := router.Run(":" + port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down recommendations-service...")

	log.Println("Recommendations service stopped")
}
