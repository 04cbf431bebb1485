package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	snsHTTP "simple-sns/internal/controller/http"
	"simple-sns/internal/repo/persistent"
	"simple-sns/internal/usecase"
	"simple-sns/pkg/cache"
	"simple-sns/pkg/config"
	"simple-sns/pkg/database"
	"simple-sns/pkg/jwt"
	"simple-sns/pkg/logger"
	"simple-sns/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "simple-sns/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	likeRepo := persistent.NewLikeRepository(a.db)

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, a.jwtService, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, a.log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, postRepo, userRepo, a.log)

	// Initialize HTTP handlers
	userHandler := snsHTTP.NewUserHandler(userUseCase, a.log)
	postHandler := snsHTTP.NewPostHandler(postUseCase, likeUseCase, a.log)

	// Setup router
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/users/join", userHandler.Join)
		api.POST("/users/login", userHandler.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(a.jwtService))
	if a.redisClient != nil {
		authed.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow))
	}
	{
		authed.POST("/posts", postHandler.Create)
		authed.GET("/posts", postHandler.List)
		authed.GET("/posts/my", postHandler.ListMine)
		authed.PUT("/posts/:postId", postHandler.Modify)
		authed.DELETE("/posts/:postId", postHandler.Delete)
		authed.POST("/posts/:postId/likes", postHandler.Like)
		authed.GET("/posts/:postId/likes", postHandler.CountLikes)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing redis: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}
