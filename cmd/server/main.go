package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AK-1225/SPONproject/config"
	"github.com/AK-1225/SPONproject/internal/api"
	"github.com/AK-1225/SPONproject/internal/api/handler"
	"github.com/AK-1225/SPONproject/internal/cache"
	"github.com/AK-1225/SPONproject/internal/remote"
	"github.com/AK-1225/SPONproject/internal/repository"
	"github.com/AK-1225/SPONproject/internal/service"
	"github.com/AK-1225/SPONproject/pkg/database"
	"github.com/AK-1225/SPONproject/pkg/logger"
	"github.com/AK-1225/SPONproject/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	if cfg.Trace.Enabled {
		shutdown, err := tracing.Init(ctx, cfg)
		if err != nil {
			logger.Warn("tracing init failed", zap.Error(err))
		} else {
			defer shutdown(ctx)
		}
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("database init failed", zap.Error(err))
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, support writes will fall back to local", zap.Error(err))
	}

	// repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	fanRepo := repository.NewFanRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	contentRepo := repository.NewContentRepository(db)
	notifyRepo := repository.NewNotificationRepository(db)
	boardRepo := repository.NewBoardRepository(db)

	// services
	notifySvc := service.NewNotificationService(notifyRepo)
	replicator := service.NewFanReplicator(fanRepo, 100000)
	stopReplicator := replicator.Start(4)
	relSvc := service.NewRelationshipService(followRepo, fanRepo, blockRepo, replicator, notifySvc)
	supportRemote := remote.NewRedisSupportRemote(rdb)
	supportSvc := service.NewSupportService(supportRepo, supportRemote, notifySvc)
	tierSvc := service.NewTierService(supportRepo, followRepo)
	contentSvc := service.NewContentService(contentRepo, fanRepo, notifySvc)
	engagementSvc := service.NewEngagementService(engagementRepo, contentRepo, notifySvc)
	boardSvc := service.NewBoardService(boardRepo, blockRepo, tierSvc, notifySvc)
	authSvc := service.NewAuthService(userRepo, contentSvc, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireMin)*time.Minute)
	athleteCache := cache.NewAthleteCache(db, rdb, 10*time.Minute)

	h := handler.New(authSvc, relSvc, supportSvc, tierSvc, engagementSvc, contentSvc, boardSvc, notifySvc, athleteCache)
	router := api.NewRouter(cfg, h)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	go func() {
		logger.Info("server started", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	if err := stopReplicator(shutdownCtx); err != nil {
		logger.Warn("replicator drain incomplete", zap.Error(err))
	}
	_ = rdb.Close()
}
