package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	sparkHTTP "social-spark/internal/controller/http"
	"social-spark/internal/gemini"
	"social-spark/internal/repo/persistent"
	"social-spark/internal/usecase"
	"social-spark/pkg/cache"
	"social-spark/pkg/config"
	"social-spark/pkg/logger"
	"social-spark/pkg/middleware"
	"social-spark/web"

	_ "social-spark/docs" // Swagger docs
)

// @title           Social Spark API
// @version         1.0
// @description     AI-assisted social media post generation: batch drafts with images, per-post text/image regeneration, local editing, copy and share payloads.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	geminiClient, err := gemini.NewClient(context.Background(), cfg)
	if err != nil {
		log.Error("Failed to create Gemini client: %v", err)
		panic(err)
	}

	themeRepo := persistent.NewThemeRepository(redisClient)
	generationUseCase := usecase.NewGenerationUseCase(geminiClient, log)
	sessionUseCase := usecase.NewSessionUseCase(generationUseCase, themeRepo, log, cfg.ShareEnabled, cfg.ShareFilesEnable)

	sessionHandler := sparkHTTP.NewSessionHandler(sessionUseCase, log)
	cardHandler := sparkHTTP.NewCardHandler(sessionUseCase, log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowS)*time.Second))

	{
		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions/:id", sessionHandler.GetSession)
		api.PUT("/sessions/:id", sessionHandler.UpdateSession)
		api.POST("/sessions/:id/generate", sessionHandler.Generate)
		api.PUT("/sessions/:id/theme", sessionHandler.SetTheme)

		api.POST("/sessions/:id/posts/:post_id/regenerate-text", cardHandler.RegenerateText)
		api.POST("/sessions/:id/posts/:post_id/regenerate-image", cardHandler.RegenerateImage)
		api.POST("/sessions/:id/posts/:post_id/edit", cardHandler.BeginEdit)
		api.POST("/sessions/:id/posts/:post_id/save", cardHandler.SaveEdit)
		api.PUT("/sessions/:id/posts/:post_id/draft", cardHandler.UpdateDraft)
		api.POST("/sessions/:id/posts/:post_id/copy", cardHandler.Copy)
		api.GET("/sessions/:id/posts/:post_id/share", cardHandler.Share)
	}

	// Embedded single-page frontend with index fallback
	r.NoRoute(web.Handler())

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Social Spark starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Social Spark exited")
}
