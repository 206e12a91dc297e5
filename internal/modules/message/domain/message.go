package domain

import (
	"strconv"
	"strings"
	"time"
)

// Channel is the conversation a search hit was posted in
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsChannel bool   `json:"is_channel"`
	IsIM      bool   `json:"is_im"`
	IsPrivate bool   `json:"is_private"`
	IsMPIM    bool   `json:"is_mpim"`
}

// IsPublic reports whether the channel is an ordinary public channel.
func (c Channel) IsPublic() bool {
	return c.IsChannel && !c.IsIM && !c.IsPrivate && !c.IsMPIM
}

// Message represents one search hit
type Message struct {
	Channel   Channel `json:"channel"`
	Timestamp string  `json:"ts"`
	UserID    string  `json:"user"`
	Username  string  `json:"username"`
	Text      string  `json:"text"`
	Permalink string  `json:"permalink"`
}

// Eligible reports whether the message may be matched against NG-words:
// it must be posted in a public channel and carry every field an alert
// needs.
func (m *Message) Eligible() bool {
	return m.Channel.IsPublic() &&
		m.Text != "" &&
		m.Channel.Name != "" &&
		m.UserID != "" &&
		m.Username != "" &&
		m.Permalink != ""
}

// Time converts the Slack ts ("seconds.micros") to a time.Time. A
// malformed ts yields the zero time.
func (m *Message) Time() time.Time {
	secs, frac, _ := strings.Cut(m.Timestamp, ".")
	sec, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return time.Time{}
	}
	var usec int64
	if frac != "" {
		if len(frac) > 6 {
			frac = frac[:6]
		}
		frac += strings.Repeat("0", 6-len(frac))
		usec, _ = strconv.ParseInt(frac, 10, 64)
	}
	return time.Unix(sec, usec*int64(time.Microsecond))
}

// SearchQuery describes one call to the search collaborator
type SearchQuery struct {
	Query         string
	Sort          string
	SortDirection string
	Count         int
}

const SearchCount = 100

// RecentMessagesQuery is the fixed query a run searches with: messages
// since yesterday, newest first.
func RecentMessagesQuery() SearchQuery {
	return SearchQuery{
		Query:         "after:yesterday type:message",
		Sort:          "timestamp",
		SortDirection: "desc",
		Count:         SearchCount,
	}
}
