// Package app wires configuration, storage, sessions and the HTTP
// server into a runnable process.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tagmark/tagmark/internal/auth"
	"github.com/tagmark/tagmark/internal/config"
	"github.com/tagmark/tagmark/internal/httpserver"
	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/logger"
	"github.com/tagmark/tagmark/internal/redis"
	"github.com/tagmark/tagmark/internal/scraper"
	"github.com/tagmark/tagmark/internal/seed"
	"github.com/tagmark/tagmark/internal/service"
	"github.com/tagmark/tagmark/internal/session"
	"github.com/tagmark/tagmark/internal/store"
	"github.com/tagmark/tagmark/internal/store/memory"
	redisstore "github.com/tagmark/tagmark/internal/store/redis"
	"github.com/tagmark/tagmark/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	var (
		st          store.Store
		redisClient *goredis.Client
	)
	switch cfg.StoreBackend {
	case config.StoreRedis:
		// Fail fast if Redis is unavailable.
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Error("failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		loggerClient.Info("redis initialized successfully")
		redisClient = client
		st = redisstore.NewStore(client)
	case config.StoreMemory:
		loggerClient.Warn("using in-memory store, bookmarks will not survive a restart")
		st = memory.New()
	}

	svc := service.New(st)

	if cfg.SeedFile != "" {
		seeder := seed.NewSeeder(cfg.SeedFile, svc, loggerClient)
		if err := seeder.Run(context.Background()); err != nil {
			loggerClient.Error("seeding failed", logger.Error(err))
			os.Exit(1)
		}
	}

	sessions := session.NewRegistry(session.RegistryConfig{
		MaxEntries: cfg.SessionMaxCount,
		IdleTTL:    cfg.SessionIdleTTL,
	})

	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		Service:          svc,
		Sessions:         sessions,
		Users:            auth.NewUsers(cfg.UsersFile, loggerClient),
		Scraper:          scraper.New(cfg.ScrapeTimeout, cfg.ScrapeUserAgent),
		RedisClient:      redisClient,
		TitleScrapeOnAdd: cfg.TitleScrapeOnAdd,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Info("starting tagmark",
		logger.String("version", version.Version),
		logger.String("commit", version.Commit),
		logger.String("addr", a.cfg.ListenPort),
		logger.String("store", a.cfg.StoreBackend))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", logger.Error(err))
		} else {
			a.logger.Info("redis closed cleanly")
		}
	}

	a.logger.Info("tagmark stopped cleanly")
	return nil
}
