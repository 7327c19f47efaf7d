package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mahmoodiftee/Learn-server/internal/config"
	"github.com/mahmoodiftee/Learn-server/internal/database"
	"github.com/mahmoodiftee/Learn-server/internal/handler"
	"github.com/mahmoodiftee/Learn-server/internal/logger"
	"github.com/mahmoodiftee/Learn-server/internal/middleware"
	"github.com/mahmoodiftee/Learn-server/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	client, err := database.Connect(ctx, cfg)
	if err != nil {
		logg.Fatalw("Failed to connect to MongoDB", "error", err)
	}
	db := client.Database(cfg.DBName)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logg.Fatalw("Failed to create indexes", "error", err)
	}
	logg.Infow("Connected to MongoDB", "database", cfg.DBName)

	// Repositories
	lessons := store.NewMongoLessons(db)
	users := store.NewMongoUsers(db)
	tutorials := store.NewMongoTutorials(db)

	// Handlers
	lessonHandler := handler.NewLessonHandler(lessons, logg)
	userHandler := handler.NewUserHandler(users, logg)
	authHandler := handler.NewAuthHandler(users, cfg.JWTSecret, logg)
	tutorialHandler := handler.NewTutorialHandler(tutorials, logg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logg))
	r.Use(middleware.MetricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Root and health
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Learn server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Tutorials (read-only)
	r.GET("/tutorials", tutorialHandler.List)

	// Lessons and embedded vocabulary
	r.GET("/lessons", lessonHandler.List)
	r.POST("/lessons", lessonHandler.Create)
	r.GET("/lessons/:id", lessonHandler.Get)
	r.PATCH("/lessons/:id", lessonHandler.Update)
	r.DELETE("/lessons/:id", lessonHandler.Delete)
	// :id is the lesson number here, not the document ID
	r.PATCH("/lessons/:id/vocabulary", lessonHandler.AddVocab)
	r.PATCH("/lessons/:id/vocabulary/:pronunciation", lessonHandler.UpdateVocab)
	r.DELETE("/lessons/:id/vocabulary/:pronunciation", lessonHandler.DeleteVocab)

	// User management, optionally behind the admin guard
	userRoutes := r.Group("/users")
	if cfg.AdminGuard {
		userRoutes.Use(middleware.AdminGuard(users, cfg.JWTSecret))
	}
	userRoutes.GET("", userHandler.List)
	userRoutes.PATCH("/:id", userHandler.SetRole)
	userRoutes.DELETE("/:id", userHandler.Delete)

	// Accounts
	r.POST("/registration", authHandler.Register)
	r.POST("/login", authHandler.Login)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logg.Infow("Learn server is running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatalw("Failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	logg.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Errorw("Server shutdown failed", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logg.Errorw("MongoDB disconnect failed", "error", err)
	}
}
