// Command sportsbot is the main entry point for the sports stats Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/josephoneill/basketball-bot-telegram/internal/config"
	"github.com/josephoneill/basketball-bot-telegram/internal/health"
	"github.com/josephoneill/basketball-bot-telegram/internal/nba"
	"github.com/josephoneill/basketball-bot-telegram/internal/nba/api"
	"github.com/josephoneill/basketball-bot-telegram/internal/observe"
	"github.com/josephoneill/basketball-bot-telegram/internal/plugin"
	"github.com/josephoneill/basketball-bot-telegram/internal/telegram"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sportsbot: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Server.LogLevel.Level(),
	}))
	slog.SetDefault(logger)

	slog.Info("sportsbot starting",
		"config", *configPath,
		"metrics_addr", cfg.Server.MetricsAddr,
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownMetrics, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: "sportsbot"})
	if err != nil {
		slog.Error("failed to initialise metrics", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			slog.Warn("metrics shutdown error", "err", err)
		}
	}()

	client := api.NewClient(api.Config{
		StatsBaseURL:      cfg.NBA.StatsBaseURL,
		LiveBaseURL:       cfg.NBA.LiveBaseURL,
		RequestsPerMinute: cfg.NBA.RequestsPerMinute,
	}, logger)

	// Sport plugins. Factories run lazily on first dispatch; a failing
	// factory is skipped, not fatal.
	registry := plugin.NewRegistry()
	registry.Register(nba.Name, func() (plugin.SportPlugin, error) {
		return nba.New(client, cfg.NBA.DirectoryRefresh.Std(), logger), nil
	})
	dispatcher := plugin.NewDispatcher(registry)

	bot, err := telegram.New(cfg.Telegram.Token, dispatcher, logger)
	if err != nil {
		slog.Error("failed to create telegram bot", "err", err)
		return 1
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return bot.Run(ctx)
	})

	if cfg.Server.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		health.New(
			health.Checker{Name: "telegram", Check: bot.Ping},
			health.Checker{Name: "nba", Check: client.Ping},
		).Register(mux)
		srv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: mux}

		g.Go(func() error {
			slog.Info("metrics endpoint listening", "addr", cfg.Server.MetricsAddr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	slog.Info("bot ready — press Ctrl+C to shut down")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}
