package service

import (
	"context"
	"log/slog"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/domain"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/repository"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/errors"
	"github.com/samber/oops"
)

// Poster delivers an alert to the moderation channel
type Poster interface {
	PostAlert(ctx context.Context, channelID, text string) error
}

// Mirror forwards an alert to a secondary destination
type Mirror interface {
	MirrorAlert(ctx context.Context, text string) error
}

// Service dispatches alerts. Only the moderation post is required to
// succeed; the mirror and the archive are best effort.
type Service struct {
	poster    Poster
	channelID string
	mirror    Mirror
	archive   repository.Repository
}

// New creates a new alert service posting to channelID
func New(poster Poster, channelID string) *Service {
	return &Service{
		poster:    poster,
		channelID: channelID,
	}
}

// SetMirror sets the optional alert mirror
func (s *Service) SetMirror(mirror Mirror) {
	s.mirror = mirror
}

// SetArchive sets the optional alert archive
func (s *Service) SetArchive(archive repository.Repository) {
	s.archive = archive
}

// Notify posts the alert and then mirrors and archives it
func (s *Service) Notify(ctx context.Context, alert *domain.Alert) error {
	text := alert.Text()

	if err := s.poster.PostAlert(ctx, s.channelID, text); err != nil {
		return oops.
			With("alert_channel", s.channelID, "channel_id", alert.Message.Channel.ID, "ts", alert.Message.Timestamp).
			Wrapf(errors.ErrPostFailed, "%v", err)
	}

	if s.mirror != nil {
		if err := s.mirror.MirrorAlert(ctx, text); err != nil {
			slog.Warn("Failed to mirror alert", "channel_id", alert.Message.Channel.ID, "ts", alert.Message.Timestamp, "error", err)
		}
	}

	if s.archive != nil {
		if err := s.archive.SaveAlert(alert); err != nil {
			slog.Warn("Failed to archive alert", "channel_id", alert.Message.Channel.ID, "ts", alert.Message.Timestamp, "error", err)
		}
	}

	return nil
}
