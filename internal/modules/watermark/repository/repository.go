package repository

import (
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/watermark/domain"
)

// Repository persists the watermark map between runs
type Repository interface {
	Load() (domain.Watermarks, error)
	Save(marks domain.Watermarks) error
}
