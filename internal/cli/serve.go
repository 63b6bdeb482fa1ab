package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"player-auction/internal/config"
	"player-auction/utils"

	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, *configPath)
		},
	}
}

func runServe(cmd *cobra.Command, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == config.DevJWTSecret {
		utils.Warn("using the built-in development JWT secret, set AUCTION_AUTH_JWT_SECRET", nil)
	}

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			utils.Error("failed to close storage", map[string]any{"error": err.Error()})
		}
	}()

	if cfg.Seed.AccountsFile != "" {
		res, err := app.Auth.SeedFromFile(cmd.Context(), cfg.Seed.AccountsFile)
		if err != nil {
			return err
		}
		utils.Info("accounts seeded", map[string]any{
			"admins":  res.AdminsCreated,
			"buyers":  res.BuyersCreated,
			"skipped": res.Skipped,
		})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serveHTTP(ctx, &http.Server{Addr: cfg.Server.Address, Handler: app.Router()}, cfg.Server)
}

// serveHTTP runs srv until ctx is cancelled, then shuts it down gracefully
func serveHTTP(ctx context.Context, srv *http.Server, cfg config.ServerConfig) error {
	errCh := make(chan error, 1)
	go func() {
		utils.Info("starting auction server", map[string]any{"address": srv.Addr})
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

	utils.Info("shutting down auction server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
