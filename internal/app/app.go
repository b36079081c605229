package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/inklet-app/inklet-backend/internal/adapter/postgres"
	authmethodrepo "github.com/inklet-app/inklet-backend/internal/adapter/postgres/authmethod"
	categoryrepo "github.com/inklet-app/inklet-backend/internal/adapter/postgres/category"
	contentrepo "github.com/inklet-app/inklet-backend/internal/adapter/postgres/content"
	submissionrepo "github.com/inklet-app/inklet-backend/internal/adapter/postgres/submission"
	tokenrepo "github.com/inklet-app/inklet-backend/internal/adapter/postgres/token"
	userrepo "github.com/inklet-app/inklet-backend/internal/adapter/postgres/user"
	"github.com/inklet-app/inklet-backend/internal/adapter/provider/google"
	jwtauth "github.com/inklet-app/inklet-backend/internal/auth"
	"github.com/inklet-app/inklet-backend/internal/config"
	"github.com/inklet-app/inklet-backend/internal/domain"
	authsvc "github.com/inklet-app/inklet-backend/internal/service/auth"
	categorysvc "github.com/inklet-app/inklet-backend/internal/service/category"
	contentsvc "github.com/inklet-app/inklet-backend/internal/service/content"
	dashboardsvc "github.com/inklet-app/inklet-backend/internal/service/dashboard"
	submissionsvc "github.com/inklet-app/inklet-backend/internal/service/submission"
	usersvc "github.com/inklet-app/inklet-backend/internal/service/user"
	"github.com/inklet-app/inklet-backend/internal/transport/middleware"
	"github.com/inklet-app/inklet-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and HTTP handlers, and serves
// until ctx is cancelled.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	// Repositories.
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	categories := categoryrepo.New(pool)
	contents := contentrepo.New(pool)
	submissions := submissionrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Auth infrastructure.
	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var verifier authsvc.OAuthVerifier
	if cfg.Auth.HasGoogleOAuth() {
		verifier = google.NewVerifier(
			cfg.Auth.GoogleClientID,
			cfg.Auth.GoogleClientSecret,
			cfg.Auth.GoogleRedirectURI,
			logger,
		)
		logger.Info("google oauth enabled")
	}

	// Services.
	auth := authsvc.NewService(logger, users, tokens, authMethods, tx, verifier, jwt, cfg.Auth)
	user := usersvc.NewService(logger, users)
	category := categorysvc.NewService(logger, categories)
	content := contentsvc.NewService(logger, cfg.Content, contents)
	submission := submissionsvc.NewService(logger, cfg.Content, submissions, contents, categories, tx)
	dashboard := dashboardsvc.NewService(logger, contents, users, categories, submissions)

	// HTTP transport.
	handlers := rest.Handlers{
		Auth:       rest.NewAuthHandler(auth, logger),
		User:       rest.NewUserHandler(user, logger),
		Submission: rest.NewSubmissionHandler(submission, logger),
		Poems:      rest.NewContentHandler(content, domain.ContentTypePoem, logger),
		BlogPosts:  rest.NewContentHandler(content, domain.ContentTypeBlogPost, logger),
		Category:   rest.NewCategoryHandler(category, logger),
		Dashboard:  rest.NewDashboardHandler(dashboard, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(auth),
	)(rest.NewRouter(handlers))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
