package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/recipelist/internal/api"
	"github.com/mmynk/recipelist/internal/auth"
	"github.com/mmynk/recipelist/internal/config"
	"github.com/mmynk/recipelist/internal/metrics"
	"github.com/mmynk/recipelist/internal/middleware"
	"github.com/mmynk/recipelist/internal/repository"
	"github.com/mmynk/recipelist/internal/service"
	"github.com/mmynk/recipelist/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	store, err := openStore(ctx, cfg.Store, m)
	if err != nil {
		return err
	}
	defer store.Close()

	repos := repository.New(store)
	defer repos.Close()

	var jwtManager *auth.JWTManager
	mux := http.NewServeMux()

	// Register the auth service outside RequireAuth so clients can unlock
	if cfg.Auth.Enabled() {
		authenticator, err := auth.NewPasscodeAuthenticator(cfg.Auth.PasscodeHash)
		if err != nil {
			return err
		}
		jwtManager = auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

		authPath, authHandler := api.NewAuthServiceHandler(
			service.NewAuthService(authenticator, jwtManager, slog.Default()),
			connect.WithInterceptors(middleware.MetricsInterceptor(m), middleware.LoggingInterceptor()),
		)
		mux.Handle(authPath, authHandler)
		slog.Info("Passcode unlock enabled", "token_ttl", cfg.Auth.TokenTTL)
	}
	opts := connect.WithInterceptors(middleware.Interceptors(m, jwtManager)...)

	// Register Connect services
	recipePath, recipeHandler := api.NewRecipeServiceHandler(service.NewRecipeService(repos), opts)
	mux.Handle(recipePath, recipeHandler)

	listPath, listHandler := api.NewShoppingListServiceHandler(service.NewShoppingListService(repos, m), opts)
	mux.Handle(listPath, listHandler)

	ingredientPath, ingredientHandler := api.NewIngredientServiceHandler(service.NewIngredientService(repos), opts)
	mux.Handle(ingredientPath, ingredientHandler)

	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", healthHandler(store))

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	mux.HandleFunc("/", staticHandler(staticDir))

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(loggedHandler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
