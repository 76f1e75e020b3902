package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saferoute/saferoute-api/internal/config"
	"github.com/saferoute/saferoute-api/internal/database"
	"github.com/saferoute/saferoute-api/internal/middleware"
	"github.com/saferoute/saferoute-api/internal/pkg/logger"
	"github.com/saferoute/saferoute-api/internal/pkg/moderation"
	"github.com/saferoute/saferoute-api/internal/pkg/response"
	"github.com/saferoute/saferoute-api/internal/routes"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer db.Disconnect(context.Background())

	// Moderation is optional: without a key, every submission passes.
	var moderator moderation.Validator = moderation.AllowAll{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := moderation.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ModerationTimeout)
		if err != nil {
			logger.Warn("moderation disabled, could not create Gemini client: %v", err)
		} else {
			moderator = gemini
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, content moderation disabled")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	routes.SetupRoutes(router, db.Database, moderator)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
