package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"task-service/internal/auth"
	"task-service/internal/config"
	"task-service/internal/navigation"
	"task-service/internal/repository"
	"task-service/internal/repository/memory"
	"task-service/internal/repository/postgres"
	"task-service/internal/session"
	transport "task-service/internal/transport/echo"
)

const (
	envFilePath      = ".env"
	serverAddrPrefix = ":"
	signalBufferSize = 1
	logOutputFlags   = log.LstdFlags | log.Lshortfile
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(logOutputFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	stdr.SetVerbosity(cfg.App.LogVerbosity)
	logger := stdr.New(log.Default())

	logger.Info("configuration loaded", "devMode", cfg.App.DevMode)

	store, userRepo, cleanup, err := buildStores(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer cleanup()

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)

	// The validator hook is nil unless configured: by default a persisted
	// token counts toward authentication by presence alone.
	var validator session.TokenValidator
	if cfg.Session.ValidatePersistedToken {
		validator = auth.NewTokenVerifier(jwtService)
	}

	sessions := session.NewService(store, validator, logger.WithName("session"))
	provider := auth.NewProvider(userRepo, jwtService, sessions, logger.WithName("auth"))

	table := navigation.MustNewTable(navigation.DefaultRoutes())

	server := transport.NewServer(&transport.ServerDependencies{
		Config:   cfg,
		Table:    table,
		Sessions: sessions,
		Provider: provider,
		Logger:   logger.WithName("guard"),
	})

	go func() {
		logger.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(serverAddrPrefix + cfg.Server.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server exited gracefully")
}

// buildStores picks the persistence backends: Redis and Postgres normally,
// in-memory adapters in dev mode.
func buildStores(cfg *config.Config, logger logr.Logger) (session.Store, repository.UserRepository, func(), error) {
	if cfg.App.DevMode {
		logger.Info("dev mode: using in-memory session store and user repository")
		return session.NewMemoryStore(), memory.NewUserRepository(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := session.NewRedisStore(rdb, cfg.Session.KeyPrefix, cfg.Session.TTL)

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		_ = rdb.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		db.Close()
		_ = rdb.Close()
	}

	return store, postgres.NewUserRepository(db), cleanup, nil
}
