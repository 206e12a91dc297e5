package di_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/di"
	alertService "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/service"
	scanService "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/scan/service"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/config"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/errors"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{"CHANNEL_ID", "SLACK_TOKEN", "NGWORDS_CSV", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "ALERT_ARCHIVE_PATH", "ALERT_FEED_PATH"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestSetup_ResolvesScanService(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	setEnv(t, map[string]string{
		"CHANNEL_ID":         "C0ALERT",
		"SLACK_TOKEN":        "xoxp-test",
		"NGWORDS_CSV":        filepath.Join(dir, "ngwords.csv"),
		"TELEGRAM_BOT_TOKEN": "123:abc",
		"TELEGRAM_CHAT_ID":   "-100200",
		"ALERT_ARCHIVE_PATH": filepath.Join(dir, "archive"),
		"ALERT_FEED_PATH":    filepath.Join(dir, "alerts.xml"),
	})

	injector, err := di.Setup("")
	require.NoError(t, err)

	cfg := do.MustInvoke[*config.Config](injector)
	assert.Equal(t, "C0ALERT", cfg.ChannelID)

	_, err = do.Invoke[*alertService.Service](injector)
	require.NoError(t, err)

	svc, err := do.Invoke[*scanService.Service](injector)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestSetup_ConfigurationError(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnv(t, map[string]string{"SLACK_TOKEN": "xoxp-test", "NGWORDS_CSV": "ngwords.csv"})

	_, err := di.Setup("")
	require.ErrorIs(t, err, errors.ErrMissingChannelID)
}
