package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements alert.Repository using file system
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based alert archive
func NewFileStorage(basePath string) (Repository, error) {
	alertPath := filepath.Join(basePath, "alerts")
	if err := os.MkdirAll(alertPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create alerts directory").Wrap(err)
	}

	return &FileStorage{basePath: alertPath}, nil
}

func (s *FileStorage) SaveAlert(alert *domain.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	channelID := alert.Message.Channel.ID

	// Store alerts in channel-specific directories
	alertDir := filepath.Join(s.basePath, channelID)
	if err := os.MkdirAll(alertDir, 0755); err != nil {
		return oops.With("alert_dir", alertDir, "context", "failed to create alert directory").Wrap(err)
	}

	path := filepath.Join(alertDir, alert.Message.Timestamp+".json")
	data, err := json.MarshalIndent(alert, "", "  ")
	if err != nil {
		return oops.With("channel_id", channelID, "ts", alert.Message.Timestamp, "context", "failed to marshal alert").Wrap(err)
	}

	return os.WriteFile(path, data, 0644)
}

// GetRecentAlerts returns up to limit alerts across all channels, newest first
func (s *FileStorage) GetRecentAlerts(limit int) ([]*domain.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, oops.With("directory", s.basePath, "context", "failed to read alerts directory").Wrap(err)
	}

	var alerts []*domain.Alert
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		channelAlerts, err := s.readChannel(entry.Name(), limit)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, channelAlerts...)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Message.Timestamp > alerts[j].Message.Timestamp
	})

	if len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

// readChannel returns the newest alerts of one channel. File names are
// Slack timestamps, so directory order is chronological.
func (s *FileStorage) readChannel(channelID string, limit int) ([]*domain.Alert, error) {
	alertDir := filepath.Join(s.basePath, channelID)
	entries, err := os.ReadDir(alertDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Alert{}, nil
		}
		return nil, oops.With("channel_id", channelID, "alert_dir", alertDir, "context", "failed to read alerts directory").Wrap(err)
	}

	files := lo.Filter(entries, func(entry os.DirEntry, _ int) bool {
		return !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json")
	})

	alerts := []*domain.Alert{}
	for i := len(files) - 1; i >= 0 && len(alerts) < limit; i-- {
		data, err := os.ReadFile(filepath.Join(alertDir, files[i].Name()))
		if err != nil {
			continue
		}

		var alert domain.Alert
		if err := json.Unmarshal(data, &alert); err != nil {
			continue
		}

		alerts = append(alerts, &alert)
	}

	return alerts, nil
}
