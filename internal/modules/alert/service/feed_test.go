package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/repository"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_GenerateFeed(t *testing.T) {
	t.Parallel()

	archive, err := repository.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	older := testAlert()
	older.Message.Timestamp = "1700000000.000100"
	newer := testAlert()
	newer.Message.Timestamp = "1700000000.000300"
	newer.Words = []string{"spam", "scam"}
	require.NoError(t, archive.SaveAlert(older))
	require.NoError(t, archive.SaveAlert(newer))

	feed, err := service.NewFeedService(archive).GenerateFeed()
	require.NoError(t, err)

	require.Len(t, feed.Items, 2)
	assert.Equal(t, "#general: spam,scam", feed.Items[0].Title)
	assert.Equal(t, "C1-1700000000.000300", feed.Items[0].Id)
	assert.Equal(t, newer.Message.Permalink, feed.Items[0].Link.Href)
	assert.Equal(t, "alice (U1)", feed.Items[0].Author.Name)
	assert.True(t, newer.Message.Time().Equal(feed.Updated))
}

func TestFeedService_WriteFeed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive, err := repository.NewFileStorage(filepath.Join(dir, "archive"))
	require.NoError(t, err)
	require.NoError(t, archive.SaveAlert(testAlert()))

	path := filepath.Join(dir, "public", "alerts.xml")
	require.NoError(t, service.NewFeedService(archive).WriteFeed(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<rss")
	assert.Contains(t, string(data), "NG-word alerts")
	assert.Contains(t, string(data), "#general: spam")
}
