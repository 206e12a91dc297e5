package domain

import (
	"fmt"
	"strings"
	"time"

	messageDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/message/domain"
)

// UnknownMemberCount is reported when the channel size could not be fetched
const UnknownMemberCount = -1

// Alert is an NG-word hit on a message
type Alert struct {
	Message     messageDomain.Message `json:"message"`
	Words       []string              `json:"words"`
	MemberCount int                   `json:"member_count"`
	DetectedAt  time.Time             `json:"detected_at"`
}

// Text renders the alert posted to the moderation channel
func (a *Alert) Text() string {
	return fmt.Sprintf("%s\n%s (%s) at #%s (%d)\nNG: %s",
		a.Message.Permalink,
		a.Message.Username,
		a.Message.UserID,
		a.Message.Channel.Name,
		a.MemberCount,
		strings.Join(a.Words, ","),
	)
}
