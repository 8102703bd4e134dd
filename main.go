package main

import (
	"quizhub/config"
	"quizhub/flash"
	"quizhub/handlers"
	"quizhub/middleware"
	"quizhub/models"
	"quizhub/routes"
	"quizhub/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Tip{},
	)
	if err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	quizRepo := services.NewQuizRepository(db)
	userService := services.NewUserService(db)
	resolver := services.NewUsernameResolver(userService, redisClient, logger)
	quizService := services.NewQuizService(quizRepo, resolver)
	tipService := services.NewTipService(db)
	authService := services.NewAuthService(db, cfg.JWTSecret)

	// Initialize handlers
	flashes := flash.NewStore([]byte(cfg.CookieSecret), logger)
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService, flashes)
	tipHandler := handlers.NewTipHandler(tipService, flashes)
	userHandler := handlers.NewUserHandler(userService, resolver, flashes)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, tipHandler, userHandler, quizRepo, cfg.JWTSecret)

	// Start server
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
