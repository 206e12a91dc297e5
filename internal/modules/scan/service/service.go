package service

import (
	"context"
	"log/slog"
	"time"

	alertDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/domain"
	messageDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/message/domain"
	ngwordService "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/ngword/service"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/scan/domain"
	watermarkDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/watermark/domain"
	watermarkRepo "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/watermark/repository"
	"github.com/samber/lo/mutable"
	"github.com/samber/oops"
)

// Searcher fetches candidate messages
type Searcher interface {
	SearchMessages(ctx context.Context, query messageDomain.SearchQuery) ([]messageDomain.Message, error)
}

// ChannelInfo looks up channel metadata
type ChannelInfo interface {
	MemberCount(ctx context.Context, channelID string) (int, error)
}

// Notifier delivers an alert
type Notifier interface {
	Notify(ctx context.Context, alert *alertDomain.Alert) error
}

// FeedWriter publishes archived alerts after a successful run
type FeedWriter interface {
	WriteFeed(path string) error
}

// Service runs one scan-and-alert pass
type Service struct {
	searcher   Searcher
	channels   ChannelInfo
	notifier   Notifier
	words      *ngwordService.Service
	watermarks watermarkRepo.Repository
	feed       FeedWriter
	feedPath   string
	now        func() time.Time
}

// New creates a new scan service
func New(searcher Searcher, channels ChannelInfo, notifier Notifier, words *ngwordService.Service, watermarks watermarkRepo.Repository) *Service {
	return &Service{
		searcher:   searcher,
		channels:   channels,
		notifier:   notifier,
		words:      words,
		watermarks: watermarks,
		now:        time.Now,
	}
}

// SetFeed enables writing the alert feed to path after each successful run
func (s *Service) SetFeed(feed FeedWriter, path string) {
	s.feed = feed
	s.feedPath = path
}

// Run performs one complete pass: load state, process the latest search
// results, and persist the advanced watermarks. Watermarks are persisted
// only when processing finishes without error; an aborted run leaves the
// stored state untouched so the same messages are reconsidered next time.
func (s *Service) Run(ctx context.Context) (*domain.Report, error) {
	marks, err := s.watermarks.Load()
	if err != nil {
		return nil, oops.With("context", "failed to load watermarks").Wrap(err)
	}

	if err := s.words.Load(); err != nil {
		return nil, err
	}

	var (
		report *domain.Report
		runErr error
	)
	if err := oops.Recover(func() {
		report, runErr = s.Process(ctx, s.words.Words(), marks)
	}); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}

	if err := s.watermarks.Save(report.Watermarks); err != nil {
		return nil, oops.With("context", "failed to save watermarks").Wrap(err)
	}

	if s.feed != nil {
		if err := s.feed.WriteFeed(s.feedPath); err != nil {
			slog.Warn("Failed to write alert feed", "path", s.feedPath, "error", err)
		}
	}

	slog.Info("Scan finished",
		"started_at", report.StartedAt.Format("2006/01/02 15:04:05"),
		"searched", report.Searched,
		"processed", report.Processed,
		"ng", report.NG,
	)

	return report, nil
}

// Process searches for recent messages and handles every one newer than
// its channel's watermark, oldest first. marks is advanced in place and
// returned in the report. The first search or post failure aborts
// processing.
func (s *Service) Process(ctx context.Context, words []string, marks watermarkDomain.Watermarks) (*domain.Report, error) {
	report := domain.NewReport(s.now(), marks)

	messages, err := s.searcher.SearchMessages(ctx, messageDomain.RecentMessagesQuery())
	if err != nil {
		return nil, err
	}
	report.Searched = len(messages)

	// Search results are newest first
	mutable.Reverse(messages)

	for i := range messages {
		msg := &messages[i]

		if reason, skip := skipReason(msg, marks); skip {
			report.Skipped[reason]++
			slog.Debug("Skipping message", "channel_id", msg.Channel.ID, "ts", msg.Timestamp, "reason", reason)
			continue
		}

		matched := ngwordService.FindMatches(msg.Text, words)
		if len(matched) > 0 {
			alert := &alertDomain.Alert{
				Message:     *msg,
				Words:       matched,
				MemberCount: s.memberCount(ctx, msg.Channel.ID),
				DetectedAt:  s.now(),
			}
			if err := s.notifier.Notify(ctx, alert); err != nil {
				return nil, err
			}
			report.NG++
		}

		marks.Advance(msg.Channel.ID, msg.Timestamp)
		report.Processed++
	}

	return report, nil
}

func skipReason(msg *messageDomain.Message, marks watermarkDomain.Watermarks) (domain.SkipReason, bool) {
	switch {
	case msg.Channel.ID == "":
		return domain.SkipReasonNoChannel, true
	case !marks.IsNewer(msg.Channel.ID, msg.Timestamp):
		return domain.SkipReasonNotNewer, true
	case !msg.Eligible():
		return domain.SkipReasonIneligible, true
	default:
		return "", false
	}
}

// memberCount returns the channel's member count, or
// alertDomain.UnknownMemberCount when it cannot be determined.
func (s *Service) memberCount(ctx context.Context, channelID string) int {
	count, err := s.channels.MemberCount(ctx, channelID)
	if err != nil {
		slog.Debug("Channel member count unavailable", "channel_id", channelID, "error", err)
		return alertDomain.UnknownMemberCount
	}
	if count <= 0 {
		return alertDomain.UnknownMemberCount
	}
	return count
}
