// Package main provides the API server entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	authapp "github.com/mittr/linkup/internal/application/auth"
	friendapp "github.com/mittr/linkup/internal/application/friendship"
	userapp "github.com/mittr/linkup/internal/application/user"
	"github.com/mittr/linkup/internal/config"
	httphandler "github.com/mittr/linkup/internal/handler/http"
	authinfra "github.com/mittr/linkup/internal/infrastructure/auth"
	"github.com/mittr/linkup/internal/infrastructure/repository/mongodb"
	"github.com/mittr/linkup/internal/middleware"
)

// Container initialization timeouts.
const (
	containerInitTimeout   = 30 * time.Second
	redisPingTimeout       = 5 * time.Second
	mongoDisconnectTimeout = 10 * time.Second
)

// Container holds all application dependencies and manages their lifecycle.
type Container struct {
	// Configuration
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	MongoDB     *mongo.Client
	MongoDBName string
	Redis       *redis.Client

	// Repositories
	UserRepo       *mongodb.MongoUserRepository
	RequestRepo    *mongodb.MongoFriendRequestRepository
	FriendshipRepo *mongodb.MongoFriendshipRepository

	// Auth infrastructure
	TokenManager *authinfra.TokenManager
	Hasher       *authinfra.BcryptHasher
	TokenStore   *authinfra.TokenStore

	// Application services
	AuthService   *authapp.Service
	UserService   *userapp.Service
	FriendService *friendapp.Service

	// HTTP handlers
	AuthHandler   *httphandler.AuthHandler
	UserHandler   *httphandler.UserHandler
	FriendHandler *httphandler.FriendHandler
}

// ContainerOption configures the Container.
type ContainerOption func(*Container)

// WithLogger sets a custom logger for the container.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.Logger = logger
	}
}

// NewContainer creates a new dependency injection container.
func NewContainer(cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.setupInfrastructure(); err != nil {
		// Clean up any partially initialized resources
		_ = c.Close()
		return nil, fmt.Errorf("failed to setup infrastructure: %w", err)
	}

	c.setupRepositories()

	if err := c.setupAuth(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to setup auth: %w", err)
	}

	c.setupServices()
	c.setupHTTPHandlers()

	if err := c.validateWiring(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("wiring validation failed: %w", err)
	}

	return c, nil
}

// validateWiring ensures all required dependencies are properly initialized.
func (c *Container) validateWiring() error {
	var errs []error

	if c.MongoDB == nil {
		errs = append(errs, errors.New("mongodb client not initialized"))
	}
	if c.Redis == nil {
		errs = append(errs, errors.New("redis client not initialized"))
	}
	if c.TokenManager == nil {
		errs = append(errs, errors.New("token manager not initialized"))
	}
	if c.AuthHandler == nil {
		errs = append(errs, errors.New("auth handler not initialized"))
	}
	if c.UserHandler == nil {
		errs = append(errs, errors.New("user handler not initialized"))
	}
	if c.FriendHandler == nil {
		errs = append(errs, errors.New("friend handler not initialized"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// setupInfrastructure initializes MongoDB and Redis.
func (c *Container) setupInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), containerInitTimeout)
	defer cancel()

	if err := c.setupMongoDB(ctx); err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}

	if err := c.setupRedis(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	return nil
}

// setupMongoDB initializes the MongoDB client.
func (c *Container) setupMongoDB(ctx context.Context) error {
	clientOpts := options.Client().
		ApplyURI(c.Config.MongoDB.URI).
		SetMaxPoolSize(c.Config.MongoDB.MaxPoolSize)

	client, connectErr := mongo.Connect(clientOpts)
	if connectErr != nil {
		return fmt.Errorf("failed to connect: %w", connectErr)
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.Config.MongoDB.Timeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx, nil); pingErr != nil {
		return fmt.Errorf("failed to ping: %w", pingErr)
	}

	c.MongoDB = client
	c.MongoDBName = c.Config.MongoDB.Database

	c.Logger.InfoContext(ctx, "connected to MongoDB",
		slog.String("database", c.Config.MongoDB.Database),
	)

	// The unique edge indexes carry the no-duplicate invariants, so index
	// creation failure is fatal.
	db := client.Database(c.Config.MongoDB.Database)
	indexCtx, indexCancel := context.WithTimeout(ctx, c.Config.MongoDB.Timeout)
	defer indexCancel()

	if indexErr := mongodb.CreateAllIndexes(indexCtx, db); indexErr != nil {
		return fmt.Errorf("failed to create indexes: %w", indexErr)
	}

	c.Logger.InfoContext(ctx, "MongoDB indexes created successfully")

	return nil
}

// setupRedis initializes the Redis client.
func (c *Container) setupRedis(ctx context.Context) error {
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
		PoolSize: c.Config.Redis.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if pingErr := c.Redis.Ping(pingCtx).Err(); pingErr != nil {
		return fmt.Errorf("failed to ping: %w", pingErr)
	}

	c.Logger.InfoContext(ctx, "connected to Redis",
		slog.String("addr", c.Config.Redis.Addr),
	)

	return nil
}

// setupRepositories initializes the MongoDB repositories.
func (c *Container) setupRepositories() {
	db := c.MongoDB.Database(c.MongoDBName)

	c.UserRepo = mongodb.NewMongoUserRepository(
		db.Collection(mongodb.CollectionUsers),
		mongodb.WithUserRepoLogger(c.Logger),
	)
	c.RequestRepo = mongodb.NewMongoFriendRequestRepository(
		db.Collection(mongodb.CollectionFriendRequests),
		c.Logger,
	)
	c.FriendshipRepo = mongodb.NewMongoFriendshipRepository(
		db.Collection(mongodb.CollectionFriendships),
		c.Logger,
	)

	c.Logger.Debug("repositories initialized")
}

// setupAuth initializes the token manager, password hasher and token store.
func (c *Container) setupAuth() error {
	manager, err := authinfra.NewTokenManager(
		c.Config.Auth.JWTSecret,
		c.Config.Auth.AccessTokenTTL,
		c.Config.Auth.RefreshTokenTTL,
	)
	if err != nil {
		return fmt.Errorf("token manager: %w", err)
	}

	c.TokenManager = manager
	c.Hasher = authinfra.NewBcryptHasher(0)
	c.TokenStore = authinfra.NewTokenStore(authinfra.TokenStoreConfig{
		Client: c.Redis,
	})

	c.Logger.Debug("auth infrastructure initialized")
	return nil
}

// setupServices wires the application services from repositories and auth
// infrastructure.
func (c *Container) setupServices() {
	sessions := authapp.NewLoginSessionWriter(
		c.TokenManager,
		c.TokenStore,
		c.Config.Auth.RefreshTokenTTL,
	)

	c.AuthService = authapp.NewService(
		authapp.NewRegisterUseCase(c.UserRepo, c.Hasher, c.TokenManager, sessions),
		authapp.NewLoginUseCase(c.UserRepo, c.Hasher, sessions),
		authapp.NewRefreshUseCase(c.TokenManager, c.TokenStore, c.Config.Auth.RefreshTokenTTL),
		authapp.NewLogoutUseCase(c.TokenStore),
	)

	c.UserService = userapp.NewService(
		userapp.NewListUsersUseCase(c.UserRepo),
		userapp.NewGetUserUseCase(c.UserRepo, c.FriendshipRepo),
	)

	locks := friendapp.NewPairLock()
	c.FriendService = friendapp.NewService(
		friendapp.NewSendRequestUseCase(c.UserRepo, c.RequestRepo, c.FriendshipRepo, locks),
		friendapp.NewAcceptRequestUseCase(c.UserRepo, c.RequestRepo, c.FriendshipRepo, locks),
		friendapp.NewDeclineRequestUseCase(c.UserRepo, c.RequestRepo, locks),
		friendapp.NewRemoveFriendUseCase(c.UserRepo, c.FriendshipRepo, locks),
		friendapp.NewListFriendsUseCase(c.UserRepo, c.FriendshipRepo),
		friendapp.NewListReceivedRequestsUseCase(c.UserRepo, c.RequestRepo),
		friendapp.NewListSentRequestsUseCase(c.UserRepo, c.RequestRepo),
	)

	c.Logger.Debug("application services initialized")
}

// setupHTTPHandlers initializes the HTTP handlers.
func (c *Container) setupHTTPHandlers() {
	c.AuthHandler = httphandler.NewAuthHandler(c.AuthService)
	c.UserHandler = httphandler.NewUserHandler(c.UserService)
	c.FriendHandler = httphandler.NewFriendHandler(c.FriendService)

	c.Logger.Debug("HTTP handlers initialized")
}

// AuthMiddleware builds the token-validating middleware for protected routes.
func (c *Container) AuthMiddleware() middleware.AuthConfig {
	cfg := middleware.DefaultAuthConfig()
	cfg.Logger = c.Logger
	cfg.TokenValidator = c.TokenManager
	return cfg
}

// Close releases all container resources.
func (c *Container) Close() error {
	c.Logger.Info("closing container resources...")

	var errs []error

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		} else {
			c.Logger.Debug("redis connection closed")
		}
	}

	if c.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
		defer cancel()

		if err := c.MongoDB.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("mongodb disconnect: %w", err))
		} else {
			c.Logger.Debug("mongodb connection closed")
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.Logger.Info("all container resources closed")
	return nil
}

// IsReady reports whether the backing stores answer pings.
func (c *Container) IsReady(ctx context.Context) bool {
	if c.MongoDB == nil {
		return false
	}
	if err := c.MongoDB.Ping(ctx, nil); err != nil {
		c.Logger.WarnContext(ctx, "mongodb health check failed", slog.String("error", err.Error()))
		return false
	}

	if c.Redis == nil {
		return false
	}
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		c.Logger.WarnContext(ctx, "redis health check failed", slog.String("error", err.Error()))
		return false
	}

	return true
}
