package di

import (
	alertRepo "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/repository"
	alertService "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/service"
	ngwordRepo "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/ngword/repository"
	ngwordService "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/ngword/service"
	scanService "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/scan/service"
	watermarkRepo "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/watermark/repository"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/config"
	slackTransport "github.com/reshetovitsme/slack-ngword-monitor/internal/transport/slack"
	telegramTransport "github.com/reshetovitsme/slack-ngword-monitor/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container. The config is
// loaded eagerly so a configuration error stops the process before any
// other service is built.
func Setup(configPath string) (do.Injector, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	injector := do.New()

	// Register Config
	do.ProvideValue(injector, cfg)

	// Register Watermark Repository
	do.Provide(injector, func(i do.Injector) (watermarkRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return watermarkRepo.NewFileStorage(cfg.LastTimestampsFile), nil
	})

	// Register NG-word Service
	do.Provide(injector, func(i do.Injector) (*ngwordService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return ngwordService.New(ngwordRepo.NewCSVSource(cfg.NGWordsCSV)), nil
	})

	// Register Slack Client
	do.Provide(injector, func(i do.Injector) (*slackTransport.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return slackTransport.New(cfg.SlackToken, cfg.SlackAPIURL), nil
	})

	// Register Telegram Mirror
	do.Provide(injector, func(i do.Injector) (*telegramTransport.Mirror, error) {
		cfg := do.MustInvoke[*config.Config](i)
		mirror, err := telegramTransport.NewMirror(cfg.TelegramBotToken, cfg.TelegramAPIURL, cfg.TelegramChatID)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram mirror").Wrap(err)
		}
		return mirror, nil
	})

	// Register Alert Archive
	do.Provide(injector, func(i do.Injector) (alertRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := alertRepo.NewFileStorage(cfg.AlertArchivePath)
		if err != nil {
			return nil, oops.With("alert_archive_path", cfg.AlertArchivePath, "context", "failed to initialize alert archive").Wrap(err)
		}
		return repo, nil
	})

	// Register Alert Service
	do.Provide(injector, func(i do.Injector) (*alertService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*slackTransport.Client](i)

		svc := alertService.New(client, cfg.ChannelID)
		if cfg.TelegramEnabled() {
			mirror, err := do.Invoke[*telegramTransport.Mirror](i)
			if err != nil {
				return nil, err
			}
			svc.SetMirror(mirror)
		}
		if cfg.AlertArchivePath != "" {
			archive, err := do.Invoke[alertRepo.Repository](i)
			if err != nil {
				return nil, err
			}
			svc.SetArchive(archive)
		}
		return svc, nil
	})

	// Register Scan Service
	do.Provide(injector, func(i do.Injector) (*scanService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := do.MustInvoke[*slackTransport.Client](i)
		notifier, err := do.Invoke[*alertService.Service](i)
		if err != nil {
			return nil, err
		}

		svc := scanService.New(
			client,
			client,
			notifier,
			do.MustInvoke[*ngwordService.Service](i),
			do.MustInvoke[watermarkRepo.Repository](i),
		)

		if cfg.AlertFeedPath != "" && cfg.AlertArchivePath != "" {
			archive := do.MustInvoke[alertRepo.Repository](i)
			svc.SetFeed(alertService.NewFeedService(archive), cfg.AlertFeedPath)
		}
		return svc, nil
	})

	return injector, nil
}
