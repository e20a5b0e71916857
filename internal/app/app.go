package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres"
	evaluationrepo "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres/evaluation"
	journalrepo "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres/journal"
	milestonerepo "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres/milestone"
	tokenrepo "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/growth-journal-backend/internal/adapter/provider/mailer"
	"github.com/heartmarshall/growth-journal-backend/internal/adapter/provider/summarizer"
	"github.com/heartmarshall/growth-journal-backend/internal/auth"
	"github.com/heartmarshall/growth-journal-backend/internal/config"
	authsvc "github.com/heartmarshall/growth-journal-backend/internal/service/auth"
	"github.com/heartmarshall/growth-journal-backend/internal/service/evaluation"
	"github.com/heartmarshall/growth-journal-backend/internal/service/journal"
	"github.com/heartmarshall/growth-journal-backend/internal/service/milestone"
	"github.com/heartmarshall/growth-journal-backend/internal/service/notify"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
	"github.com/heartmarshall/growth-journal-backend/internal/service/user"
	"github.com/heartmarshall/growth-journal-backend/internal/transport/middleware"
	"github.com/heartmarshall/growth-journal-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires services and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	server, err := NewServer(cfg, pool, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      server.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	server.Close(shutdownCtx)

	logger.Info("stopped")
	return nil
}

// Server is the wired HTTP handler with the background workers it owns.
type Server struct {
	Handler http.Handler

	notify  *notify.Service
	limiter *middleware.RateLimiter
	log     *slog.Logger
}

// NewServer builds repositories, services and the REST router on top of pool.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Server, error) {
	// Repositories
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	entries := journalrepo.New(pool)
	ledger := milestonerepo.New(pool)
	evaluations := evaluationrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Optional providers. Interfaces stay nil when disabled.
	notifySvc := notify.NewService(logger, users, nil)
	if cfg.Mail.Enabled() {
		mail := mailer.New(cfg.Mail.BaseURL, cfg.Mail.APIKey, cfg.Mail.From, cfg.Mail.Timeout, logger)
		notifySvc = notify.NewService(logger, users, mail)
	}

	milestoneSvc := milestone.NewService(logger, ledger)
	progressSvc := progress.NewService(logger, entries, users, milestoneSvc, notifySvc, progress.Config{
		Thresholds:        cfg.Progress.MilestoneThresholds,
		DefaultWindowDays: cfg.Progress.DefaultWindowDays,
	})

	journalSvc := journal.NewService(logger, entries, progressSvc, nil)
	if cfg.LLM.Enabled() {
		sum := summarizer.New(summarizer.Config{
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			MaxTokens: int64(cfg.LLM.MaxTokens),
			Timeout:   cfg.LLM.Timeout,
		}, logger)
		journalSvc = journal.NewService(logger, entries, progressSvc, sum)
	}

	evaluationSvc, err := evaluation.NewService(logger, evaluations, evaluation.Form{
		Questions:    evaluation.ParseList(cfg.Evaluation.QuestionsRaw),
		Traits:       evaluation.ParseList(cfg.Evaluation.TraitsRaw),
		FaithOptions: evaluation.ParseList(cfg.Evaluation.FaithOptionsRaw),
	})
	if err != nil {
		return nil, fmt.Errorf("evaluation form: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authSvc := authsvc.NewService(logger, users, users, tokens, tx, jwtManager, cfg.Auth)
	userSvc := user.NewService(logger, users, users, tx)

	// Transport
	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, Version, map[string]bool{
			"summarizer": cfg.LLM.Enabled(),
			"mail":       cfg.Mail.Enabled(),
		}),
		Auth:       rest.NewAuthHandler(authSvc, logger),
		User:       rest.NewUserHandler(userSvc, logger),
		Journal:    rest.NewJournalHandler(journalSvc, logger),
		Progress:   rest.NewProgressHandler(progressSvc, milestoneSvc, logger),
		Evaluation: rest.NewEvaluationHandler(evaluationSvc, logger),
	}, rl.Limit(cfg.RateLimit.AuthPerMinute))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc),
	)(router)

	return &Server{Handler: handler, notify: notifySvc, limiter: rl, log: logger}, nil
}

// Close stops the rate limiter and waits for in-flight notifications until
// ctx expires.
func (s *Server) Close(ctx context.Context) {
	s.limiter.Stop()
	if err := s.notify.Wait(ctx); err != nil {
		s.log.Warn("pending notifications dropped", slog.String("error", err.Error()))
	}
}
