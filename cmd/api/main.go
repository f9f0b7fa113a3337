// @title QuizTube API
// @version 1.0
// @description Generates multiple-choice quizzes from YouTube videos.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiztube/internal/adapter"
	"quiztube/internal/adapter/acquisition"
	"quiztube/internal/adapter/quizgen"
	"quiztube/internal/adapter/transcription"
	"quiztube/internal/cache"
	"quiztube/internal/config"
	"quiztube/internal/database"
	"quiztube/internal/handler"
	"quiztube/internal/logger"
	"quiztube/internal/middleware"
	"quiztube/internal/repository"
	"quiztube/internal/service"

	_ "quiztube/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with timing.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Pipeline adapters. Both the transcriber and the generator switch
	// on configuration so a local stack (whisper.cpp + ollama) and the
	// hosted stack (OpenAI + Gemini) stay interchangeable.
	acquirer := acquisition.NewYTDLPAcquirer(cfg.Media, appLogger)

	transcriber, err := transcription.New(cfg.Transcription, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create transcriber", zap.Error(err))
	}
	appLogger.Info("Transcriber initialized", zap.String("source", cfg.Transcription.Source))

	generator, err := quizgen.New(ctx, cfg.Generation, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}
	appLogger.Info("Quiz generator initialized", zap.String("source", cfg.Generation.Source))

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	quizRepository := repository.NewQuizDatabaseAdapter(db)
	userRepository := repository.NewSQLXUserRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	quizService := service.NewQuizService(quizRepository, txManager, acquirer, transcriber, generator, cacheAdapter, cfg)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	userService := service.NewUserService(userRepository)

	quizHandler := handler.NewQuizHandler(quizService)
	authHandler := handler.NewAuthHandler(authService, cfg)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetMyProfile)

	quizGroup := apiGroup.Group("/quizzes", middleware.Protected(authService))
	quizGroup.Post("/", quizHandler.CreateQuiz)
	quizGroup.Get("/", quizHandler.ListQuizzes)
	quizGroup.Get("/:id", quizHandler.GetQuiz)
	quizGroup.Patch("/:id", quizHandler.UpdateQuiz)
	quizGroup.Delete("/:id", quizHandler.DeleteQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
