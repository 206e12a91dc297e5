package domain_test

import (
	"testing"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/alert/domain"
	messageDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/message/domain"
	"github.com/stretchr/testify/assert"
)

func TestAlert_Text(t *testing.T) {
	t.Parallel()

	alert := &domain.Alert{
		Message: messageDomain.Message{
			Channel:   messageDomain.Channel{ID: "C1", Name: "random", IsChannel: true},
			Timestamp: "200",
			UserID:    "U42",
			Username:  "bob",
			Text:      "spam and scam",
			Permalink: "https://example.slack.com/archives/C1/p200",
		},
		Words:       []string{"spam", "scam"},
		MemberCount: 12,
	}

	want := "https://example.slack.com/archives/C1/p200\n" +
		"bob (U42) at #random (12)\n" +
		"NG: spam,scam"
	assert.Equal(t, want, alert.Text())
}

func TestAlert_TextUnknownMembers(t *testing.T) {
	t.Parallel()

	alert := &domain.Alert{
		Message: messageDomain.Message{
			Channel:   messageDomain.Channel{Name: "random"},
			UserID:    "U42",
			Username:  "bob",
			Permalink: "https://example.slack.com/p",
		},
		Words:       []string{"spam"},
		MemberCount: domain.UnknownMemberCount,
	}

	assert.Contains(t, alert.Text(), "at #random (-1)\n")
}
