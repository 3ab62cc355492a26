package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/logging"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/reminder"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Open(cfg)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}
	if err := dbpkg.SeedAdmin(db, cfg, logger); err != nil {
		return err
	}

	m := metrics.New()

	dispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer dispatcher.Close()

	locker, closeLocker, err := newLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	var processor *media.Processor
	if cfg.S3Enabled() {
		processor = media.NewProcessor(
			media.Transcoder{MaxWidth: cfg.MediaMaxWidth},
			media.NewS3Store(cfg),
		)
		logger.Info("media uploads enabled", zap.String("bucket", cfg.S3Bucket))
	}

	var policy domain.TransitionPolicy = domain.PermissivePolicy{}
	if cfg.StrictTransitions {
		policy = domain.StrictPolicy{}
	}

	// ======================================================
	// REMINDERS
	// ======================================================
	var notifier reminder.Notifier = reminder.NewLogNotifier(logger)
	if cfg.TwilioEnabled() {
		notifier = reminder.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	}
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	salonRepo := infraRepo.NewSalonGormRepository(db)
	scheduler := reminder.NewScheduler(bookingRepo, salonRepo, notifier, cfg.Timezone, m, logger)
	if err := scheduler.Start(cfg.ReminderCron); err != nil {
		return err
	}
	defer scheduler.Stop()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Cfg:     cfg,
		Log:     logger,
		Metrics: m,
		Audit:   dispatcher,
		Locker:  locker,
		Media:   processor,
		Policy:  policy,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newLocker picks the Redis locker when REDIS_URL is set so several API
// processes serialise on the same slot; otherwise a process-local one.
// The returned func closes whatever connection the locker holds.
func newLocker(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domain.SlotLocker, func(), error) {
	if cfg.RedisURL == "" {
		return lock.NewLocalLocker(cfg.SlotLockWait()), func() {}, nil
	}
	client, err := lock.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("slot locks backed by redis")

	l := lock.NewRedisLocker(client, cfg.SlotLockWait(), logger)
	return l, func() {
		if err := l.Close(); err != nil {
			logger.Warn("redis close failed", zap.Error(err))
		}
	}, nil
}
