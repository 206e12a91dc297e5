package service

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/domain"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/repository"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/fileutil"
	"github.com/samber/oops"
)

const feedSize = 50

// FeedService renders archived alerts as an RSS feed
type FeedService struct {
	archive repository.Repository
	now     func() time.Time
}

// NewFeedService creates a new alert feed service
func NewFeedService(archive repository.Repository) *FeedService {
	return &FeedService{
		archive: archive,
		now:     time.Now,
	}
}

// GenerateFeed builds a feed of the most recent alerts
func (s *FeedService) GenerateFeed() (*feeds.Feed, error) {
	alerts, err := s.archive.GetRecentAlerts(feedSize)
	if err != nil {
		return nil, oops.With("context", "failed to get alerts").Wrap(err)
	}

	feed := &feeds.Feed{
		Title:       "NG-word alerts",
		Link:        &feeds.Link{Href: "https://slack.com"},
		Description: "Messages flagged for containing NG-words",
		Created:     s.now(),
		Updated:     s.now(),
	}

	for _, alert := range alerts {
		feed.Items = append(feed.Items, alertToFeedItem(alert))
	}
	if len(alerts) > 0 {
		feed.Updated = alerts[0].Message.Time()
	}

	return feed, nil
}

// WriteFeed renders the feed as RSS and atomically replaces path
func (s *FeedService) WriteFeed(path string) error {
	feed, err := s.GenerateFeed()
	if err != nil {
		return err
	}

	rss, err := feed.ToRss()
	if err != nil {
		return oops.With("context", "failed to render rss").Wrap(err)
	}

	return fileutil.WriteAtomic(path, []byte(rss), 0644)
}

func alertToFeedItem(alert *domain.Alert) *feeds.Item {
	msg := alert.Message
	words := strings.Join(alert.Words, ",")

	content := fmt.Sprintf("<p>%s</p><p><strong>NG:</strong> %s</p><p>#%s (%d members)</p>",
		html.EscapeString(msg.Text),
		html.EscapeString(words),
		html.EscapeString(msg.Channel.Name),
		alert.MemberCount,
	)

	return &feeds.Item{
		Title:       fmt.Sprintf("#%s: %s", msg.Channel.Name, words),
		Link:        &feeds.Link{Href: msg.Permalink},
		Description: truncate(msg.Text, 200),
		Content:     content,
		Author:      &feeds.Author{Name: fmt.Sprintf("%s (%s)", msg.Username, msg.UserID)},
		Created:     msg.Time(),
		Id:          fmt.Sprintf("%s-%s", msg.Channel.ID, msg.Timestamp),
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
