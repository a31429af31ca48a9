package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	adapthttp "cataloguer/internal/adapter/http"
	"cataloguer/internal/adapter/postgres"
	redisadapter "cataloguer/internal/adapter/redis"
	"cataloguer/internal/app"
	"cataloguer/internal/config"
	"cataloguer/internal/domain"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db open")
	}
	defer func() { _ = db.Close() }()

	var sessions domain.SessionRepository = postgres.NewSessionRepo(db)
	if cfg.RedisURL != "" {
		client, err := redisadapter.Open(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis open")
		}
		defer func() { _ = client.Close() }()
		sessions = redisadapter.NewSessionRepo(client)
		logger.Info().Msg("sessions stored in redis")
	}

	var verifier app.CredentialVerifier
	if cfg.PlaintextPasswords {
		logger.Warn().Msg("plaintext credential comparison enabled; migrate the users table to bcrypt hashes")
		verifier = app.PlaintextVerifier{}
	}

	authSvc := app.NewAuthService(db, sessions, verifier, cfg.SessionTTL, logger)
	catSvc := app.NewCatalogueService(db, logger)

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			sweepCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := sessions.DeleteExpired(sweepCtx); err != nil {
				logger.Error().Err(err).Msg("session sweep failed")
			}
			cancel()
		}
	}()

	srv := adapthttp.New(catSvc, authSvc, cfg.WebDir, logger).WithCORS(cfg.AllowedOrigins)

	if cfg.SSOEnabled() {
		provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuer)
		if err != nil {
			logger.Fatal().Err(err).Msg("oidc provider")
		}
		srv = srv.WithOIDC(&adapthttp.OIDCConfig{
			Provider: provider,
			OAuth2Config: oauth2.Config{
				ClientID:     cfg.OIDCClientID,
				ClientSecret: cfg.OIDCClientSecret,
				RedirectURL:  cfg.OIDCRedirectURL,
				Endpoint:     provider.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		})
		logger.Info().Str("issuer", cfg.OIDCIssuer).Msg("sso login enabled")
	}

	httpServer := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("server stopped")
}
