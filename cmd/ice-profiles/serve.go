package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/cloudflare"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/ports"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/services"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/handler"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/profiles"
	"github.com/spf13/cobra"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the active ICE profile over HTTP and WebSocket",
		Example: "ice-profiles serve --environment kandy --profile us --addr :8080",
		RunE:    runServe,
	}
	serveCmd.Flags().String(flagProfile, "", "profile name to serve (overrides ICE_PROFILE)")
	serveCmd.Flags().String(flagAddr, "", "listen address (overrides SERVER_ADDR)")
	return serveCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	slog.Info("Starting app")

	cfg, err := loadConfig(cmd)
	if err != nil {
		slog.Error("Failed to parse config", "error", err)
		return err
	}

	env, err := profiles.ParseEnvironment(cfg.Environment)
	if err != nil {
		return err
	}

	table := profiles.NewTable()
	profile, err := table.Lookup(env, cfg.Profile)
	if err != nil {
		return err
	}

	staticClient, err := services.NewStaticRTCConfigClient(profile)
	if err != nil {
		return fmt.Errorf("active profile is unusable: %w", err)
	}

	var client ports.RTCConfigClient = staticClient
	if cfg.UseCloudflare() {
		slog.Info("Using cloudflare TURN credentials")
		client = cloudflare.NewClient("", cfg.CloudflareTURNKey, cfg.CloudflareTURNAPIToken, &http.Client{Timeout: 10 * time.Second})
	}
	fetcher := services.NewRTCConfigFetcher(client)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handler.NewRouter(cfg, env, table, fetcher),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving ICE profile", "addr", cfg.ServerAddr, "env", env, "profile", profile.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", "error", err)
		return err
	}

	slog.Info("App finished")
	return nil
}
