package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/domain"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/repository"
	messageDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/message/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlert(channelID, ts string) *domain.Alert {
	return &domain.Alert{
		Message: messageDomain.Message{
			Channel:   messageDomain.Channel{ID: channelID, Name: "ch-" + channelID, IsChannel: true},
			Timestamp: ts,
			UserID:    "U1",
			Username:  "alice",
			Text:      "spam",
			Permalink: "https://example.slack.com/archives/" + channelID + "/p" + ts,
		},
		Words:       []string{"spam"},
		MemberCount: 3,
	}
}

func TestFileStorage_SaveAndGetRecentAlerts(t *testing.T) {
	t.Parallel()

	store, err := repository.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	for _, ts := range []string{"100.000001", "300.000001", "200.000001"} {
		require.NoError(t, store.SaveAlert(newAlert("C1", ts)))
	}

	alerts, err := store.GetRecentAlerts(2)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "300.000001", alerts[0].Message.Timestamp)
	assert.Equal(t, "200.000001", alerts[1].Message.Timestamp)
	assert.Equal(t, []string{"spam"}, alerts[0].Words)
}

func TestFileStorage_GetRecentAlertsEmptyArchive(t *testing.T) {
	t.Parallel()

	store, err := repository.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	alerts, err := store.GetRecentAlerts(10)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestFileStorage_GetRecentAlerts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := repository.NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, store.SaveAlert(newAlert("C1", "100.000000")))
	require.NoError(t, store.SaveAlert(newAlert("C2", "400.000000")))
	require.NoError(t, store.SaveAlert(newAlert("C1", "300.000000")))
	require.NoError(t, store.SaveAlert(newAlert("C2", "200.000000")))

	// Unreadable entries are skipped
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alerts", "C1", "999.json"), []byte("{"), 0o644))

	alerts, err := store.GetRecentAlerts(3)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "400.000000", alerts[0].Message.Timestamp)
	assert.Equal(t, "300.000000", alerts[1].Message.Timestamp)
	assert.Equal(t, "200.000000", alerts[2].Message.Timestamp)
}
