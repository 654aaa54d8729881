package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/kshitijrv/mingle/internal/pkg/config"
	"github.com/kshitijrv/mingle/internal/pkg/database"
	"github.com/kshitijrv/mingle/internal/pkg/health"
	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/middleware"
	natspkg "github.com/kshitijrv/mingle/internal/pkg/nats"
	"github.com/kshitijrv/mingle/internal/pkg/server"
	"github.com/kshitijrv/mingle/internal/pkg/validator"
	postGateway "github.com/kshitijrv/mingle/services/posts/gateway"
	postHandler "github.com/kshitijrv/mingle/services/posts/handler"
	postHTTP "github.com/kshitijrv/mingle/services/posts/handler/http"
	postRepository "github.com/kshitijrv/mingle/services/posts/repository"
	postStorage "github.com/kshitijrv/mingle/services/posts/storage"
	postUsecase "github.com/kshitijrv/mingle/services/posts/usecase"
	userGateway "github.com/kshitijrv/mingle/services/users/gateway"
	userHandler "github.com/kshitijrv/mingle/services/users/handler"
	userHTTP "github.com/kshitijrv/mingle/services/users/handler/http"
	userRepository "github.com/kshitijrv/mingle/services/users/repository"
	userUsecase "github.com/kshitijrv/mingle/services/users/usecase"
)

func main() {
	appName := "mingle-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	if err := postgresClient.RunMigrations(context.Background()); err != nil {
		zapLogger.Fatal("Failed to run migrations", logger.Err(err))
	}

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// S3 media store
	mediaStore, err := postStorage.NewS3Store(context.Background(), &configs.S3)
	if err != nil {
		zapLogger.Fatal("Failed to initialize media store", logger.Err(err))
	}

	// users service
	userRepo := userRepository.NewUserRepo(postgresClient.GetDB(), configs)
	userGW := userGateway.NewUserGW(natsClient, configs)
	userUC := userUsecase.NewUserUC(userRepo, userGW, configs)
	authHandler := userHTTP.NewAuthHandler(userUC, configs)
	oauthHandler := userHTTP.NewOAuthHandler(userUC, configs)
	usersHandler := userHandler.NewHandler(authHandler, oauthHandler, redisClient.GetClient(), configs)

	// posts service
	postRepo := postRepository.NewPostRepo(postgresClient.GetDB(), configs)
	postGW := postGateway.NewPostGW(natsClient)
	postUC := postUsecase.NewPostUC(postRepo, mediaStore, postGW, configs)
	postsHandler := postHandler.NewHandler(postHTTP.NewPostHandler(postUC), configs)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	usersHandler.RegisterRoutes(e)
	postsHandler.RegisterRoutes(e)

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, map[string]health.Checker{
		"postgres": func() error { return postgresClient.GetDB().Ping() },
		"redis": func() error {
			return redisClient.GetClient().Ping(context.Background()).Err()
		},
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
