package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/di"
	scanService "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/scan/service"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/config"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/errors"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
)

const (
	exitConfig  = 1
	exitAborted = 2
)

func main() {
	// Informational output goes to stdout; errors are also emitted as JSON
	// on stderr so they stay distinguishable in cron mail and log shippers.
	level := new(slog.LevelVar)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(slogmulti.Fanout(textHandler, jsonHandler)))

	app := &cli.App{
		Name:  "ngword-monitor",
		Usage: "report recent Slack messages containing NG-words to a moderation channel",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a yaml, json or toml config file",
				EnvVars: []string{"MONITOR_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.Context, c.String("config"), level)
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Monitor failed", "error", err)
		os.Exit(exitConfig)
	}
}

func run(ctx context.Context, configPath string, level *slog.LevelVar) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	injector, err := di.Setup(configPath)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return cli.Exit("", exitConfig)
	}

	cfg := do.MustInvoke[*config.Config](injector)
	level.Set(cfg.LogLevel())

	svc, err := do.Invoke[*scanService.Service](injector)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		return cli.Exit("", exitConfig)
	}

	if _, err := svc.Run(ctx); err != nil {
		if errors.IsConfiguration(err) {
			slog.Error("Invalid configuration", "error", err)
			return cli.Exit("", exitConfig)
		}
		slog.Error("Scan aborted", "error", err)
		return cli.Exit("", exitAborted)
	}

	return nil
}
