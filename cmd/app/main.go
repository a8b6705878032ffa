package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursecms/config"
	"coursecms/internal/application/usecase"
	"coursecms/internal/infrastructure/repository"
	"coursecms/internal/infrastructure/security"
	"coursecms/internal/platform/logger"
	handlers "coursecms/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Warn("ADMIN_PASSWORD is not set, admin endpoints will reject every request")
	}

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store", "driver", cfg.StoreDriver, "error", err)
	}
	defer closeStore()
	log.Info("Document store ready", "driver", cfg.StoreDriver)

	courseRepo := repository.NewCourseRepository(store, log)
	challengeRepo := repository.NewChallengeRepository(store, log)
	if err := courseRepo.Init(ctx); err != nil {
		log.Fatal("Failed to init courses", "error", err)
	}
	if err := challengeRepo.Init(ctx); err != nil {
		log.Fatal("Failed to init challenge", "error", err)
	}

	var tokens *security.TokenManager
	if cfg.AdminTokenSecret != "" {
		tokens = security.NewTokenManager(cfg.AdminTokenSecret, cfg.AdminTokenTTL)
	}
	gate := security.NewAdminGate(cfg.AdminPassword, cfg.AdminPasswordHash, tokens)

	catalog := usecase.NewCatalogUseCase(courseRepo, nil)
	challenges := usecase.NewChallengeUseCase(challengeRepo, nil)

	router := handlers.NewRouter(handlers.RouterConfig{
		AuthHandler:      handlers.NewAuthHandler(gate, log),
		CourseHandler:    handlers.NewCourseHandler(catalog, log),
		ChallengeHandler: handlers.NewChallengeHandler(challenges, log),
		Gate:             gate,
		Log:              log,
		AllowedOrigins:   cfg.Origins(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to run server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}

// openStore builds the document store for STORE_DRIVER. The returned func
// releases its connections.
func openStore(ctx context.Context, cfg config.Config) (repository.DocumentStore, func(), error) {
	noop := func() {}

	switch cfg.StoreDriver {
	case "", "file":
		s, err := repository.NewFileStore(cfg.DataDir)
		return s, noop, err

	case "memory":
		return repository.NewMemoryStore(), noop, nil

	case "postgres":
		db, err := repository.OpenPostgres(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		if err != nil {
			return nil, noop, err
		}
		s, err := repository.NewGormStore(db)
		return s, noop, err

	case "sqlite":
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		s, err := repository.NewGormStore(db)
		return s, noop, err

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, noop, err
		}
		return repository.NewRedisStore(rdb, cfg.RedisPrefix), func() { _ = rdb.Close() }, nil

	case "mongo":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := repository.ConnectMongo(connectCtx, cfg.MongoURI)
		if err != nil {
			return nil, noop, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return repository.NewMongoStore(client.Database(cfg.MongoDB)), closeFn, nil

	default:
		return nil, noop, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
