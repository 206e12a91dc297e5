package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	ChannelID          string `koanf:"channel_id"`
	SlackToken         string `koanf:"slack_token"`
	SlackAPIURL        string `koanf:"slack_api_url"`
	NGWordsCSV         string `koanf:"ngwords_csv"`
	LastTimestampsFile string `koanf:"last_timestamps_file"`
	TelegramBotToken   string `koanf:"telegram_bot_token"`
	TelegramAPIURL     string `koanf:"telegram_api_url"`
	TelegramChatID     string `koanf:"telegram_chat_id"`
	AlertArchivePath   string `koanf:"alert_archive_path"`
	AlertFeedPath      string `koanf:"alert_feed_path"`
	AppEnv             AppEnv `koanf:"app_env"`
}

// TelegramEnabled reports whether alerts are mirrored to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// LogLevel maps the application environment to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.AppEnv {
	case AppEnvLocal, AppEnvDevelopment:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

var defaultConfigFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

// Load reads configuration from path (or the first default config file
// found) and then from the environment, which takes precedence.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	configFile, found := path, path != ""
	if !found {
		configFile, found = lo.Find(defaultConfigFiles, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	if !k.Exists("last_timestamps_file") {
		k.Set("last_timestamps_file", "./last-timestamps.json")
	}
	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if env, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = env
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	cfg.ChannelID = strings.TrimSpace(cfg.ChannelID)
	cfg.SlackToken = strings.TrimSpace(cfg.SlackToken)
	cfg.NGWordsCSV = strings.TrimSpace(cfg.NGWordsCSV)

	// Validate required fields
	if cfg.ChannelID == "" {
		return nil, errors.ErrMissingChannelID
	}
	if cfg.SlackToken == "" {
		return nil, errors.ErrMissingSlackToken
	}
	if cfg.NGWordsCSV == "" {
		return nil, errors.ErrMissingNGWordsCSV
	}

	return &cfg, nil
}
