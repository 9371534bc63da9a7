package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/swagateam/swagabot/internal/bot"
	"github.com/swagateam/swagabot/internal/config"
	"github.com/swagateam/swagabot/internal/delivery/http"
	"github.com/swagateam/swagabot/internal/delivery/http/handler"
	"github.com/swagateam/swagabot/internal/delivery/http/middleware"
	"github.com/swagateam/swagabot/internal/infrastructure/database"
	"github.com/swagateam/swagabot/internal/infrastructure/server"
	"github.com/swagateam/swagabot/internal/logger"
	"github.com/swagateam/swagabot/internal/repository/postgres"
	"github.com/swagateam/swagabot/internal/usecase/like"
	"github.com/swagateam/swagabot/internal/usecase/matchmaker"
	"github.com/swagateam/swagabot/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Server.Env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis only backs the update dedup guard; the bot runs without it.
	var redisClient *redis.Client
	var dedup bot.Deduper
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		dedup = bot.NewRedisDeduper(redisClient, cfg.Redis.DedupTTL)
	}

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	exposureRepo := postgres.NewExposureRepository(db)
	likeRepo := postgres.NewLikeRepository(db)

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(profileRepo)

	matchmakerUseCase := matchmaker.NewMatchmakerUseCase(
		profileRepo,
		activityRepo,
		exposureRepo,
	)

	likeUseCase := like.NewLikeUseCase(
		likeRepo,
		profileRepo,
	)

	// Initialize conversation gateway
	sessions := bot.NewSessionStore()
	gateway := bot.NewGateway(
		profileUseCase,
		matchmakerUseCase,
		likeUseCase,
		sessions,
		dedup,
		log,
	)

	// Initialize handlers
	updateHandler := handler.NewUpdateHandler(gateway)

	// Initialize middleware
	webhookAuth := middleware.NewWebhookAuth(cfg.Webhook.Secret)

	// Initialize router
	router := http.NewRouter(updateHandler, webhookAuth)
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	_ = c.Log.Sync()
	return nil
}
