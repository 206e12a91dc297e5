package repository

import (
	"encoding/json"
	"os"
	"slices"
	"sync"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/watermark/domain"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/errors"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/fileutil"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository as a JSON list of [channelID, ts] pairs
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage creates a file-backed watermark repository
func NewFileStorage(path string) Repository {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() (domain.Watermarks, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.New(), nil
		}
		return nil, oops.With("path", s.path, "context", "failed to read watermarks").Wrap(err)
	}

	var pairs [][]string
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, oops.With("path", s.path).Wrapf(errors.ErrCorruptWatermarks, "%v", err)
	}

	if _, bad := lo.Find(pairs, func(pair []string) bool { return len(pair) != 2 }); bad {
		return nil, oops.With("path", s.path, "context", "watermark entry is not a [channel, ts] pair").Wrap(errors.ErrCorruptWatermarks)
	}

	marks := domain.Watermarks(lo.SliceToMap(pairs, func(pair []string) (string, string) {
		return pair[0], pair[1]
	}))
	return marks, nil
}

func (s *FileStorage) Save(marks domain.Watermarks) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := lo.Keys(marks)
	slices.Sort(channels)
	pairs := lo.Map(channels, func(channelID string, _ int) [2]string {
		return [2]string{channelID, marks[channelID]}
	})

	data, err := json.Marshal(pairs)
	if err != nil {
		return oops.With("path", s.path, "context", "failed to marshal watermarks").Wrap(err)
	}

	return fileutil.WriteAtomic(s.path, data, 0644)
}
