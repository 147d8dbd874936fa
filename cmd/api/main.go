package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/artspires-api/api/swagger"
	"github.com/noah-isme/artspires-api/internal/handler"
	"github.com/noah-isme/artspires-api/internal/repository"
	"github.com/noah-isme/artspires-api/internal/server"
	"github.com/noah-isme/artspires-api/internal/service"
	"github.com/noah-isme/artspires-api/pkg/cache"
	"github.com/noah-isme/artspires-api/pkg/config"
	"github.com/noah-isme/artspires-api/pkg/database"
	"github.com/noah-isme/artspires-api/pkg/logger"
	"github.com/noah-isme/artspires-api/pkg/payment"
)

const shutdownTimeout = 10 * time.Second

// @title Art Spires Academy API
// @version 1.0.0
// @description Class enrollment, approval and payment API
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()

	mongoClient, err := database.NewMongo(ctx, cfg.Mongo, metrics.CommandMonitor())
	if err != nil {
		logr.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logr.Warn("mongodb disconnect failed", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Database)

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
			redisClient = nil
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, "artspires")
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)

	if cfg.Payment.SecretKey == "" {
		logr.Warn("PAYMENT_SECRET_KEY is empty; payment intents will be rejected by the processor")
	}
	gateway := payment.NewStripeGateway(cfg.Payment.SecretKey, cfg.Payment.Currency, nil)

	validate := validator.New()

	userRepo := repository.NewUserRepository(db.Collection(database.CollectionUsers))
	pendingRepo := repository.NewClassRepository(db.Collection(database.CollectionClasses))
	approvedRepo := repository.NewClassRepository(db.Collection(database.CollectionApprovedClass))
	enrollmentRepo := repository.NewEnrollmentRepository(db.Collection(database.CollectionEnrollments))
	paymentRepo := repository.NewPaymentRepository(
		db.Collection(database.CollectionPayments),
		db.Collection(database.CollectionEnrollments),
		cfg.Mongo.UseTransactions,
		logr,
	)
	feedbackRepo := repository.NewFeedbackRepository(db.Collection(database.CollectionFeedbacks))

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
	})
	userSvc := service.NewUserService(userRepo, validate, logr)
	classSvc := service.NewClassService(pendingRepo, approvedRepo, cacheSvc, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, approvedRepo, cacheSvc, metrics, logr)
	paymentSvc := service.NewPaymentService(paymentRepo, gateway, validate, metrics, logr)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, logr)

	router := server.NewRouter(cfg, server.Dependencies{
		Auth:    authSvc,
		Users:   userSvc,
		Metrics: metrics,
		Logger:  logr,
	}, server.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Users:      handler.NewUserHandler(userSvc),
		Classes:    handler.NewClassHandler(classSvc),
		Enrollment: handler.NewEnrollmentHandler(enrollmentSvc),
		Payments:   handler.NewPaymentHandler(paymentSvc),
		Feedback:   handler.NewFeedbackHandler(feedbackSvc),
		Metrics: handler.NewMetricsHandler(metrics, func(ctx context.Context) error {
			return database.Ping(ctx, mongoClient)
		}),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
