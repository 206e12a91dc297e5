package domain

// Watermarks maps a channel ID to the timestamp of the newest message
// already processed in that channel. Timestamps are fixed-width Slack ts
// tokens and compare lexicographically.
type Watermarks map[string]string

// New returns an empty watermark map.
func New() Watermarks {
	return make(Watermarks)
}

// Get returns the watermark for channelID, or "" when the channel has
// never been processed. "" sorts before every real timestamp.
func (w Watermarks) Get(channelID string) string {
	return w[channelID]
}

// Advance overwrites the watermark for channelID.
func (w Watermarks) Advance(channelID, ts string) {
	w[channelID] = ts
}

// IsNewer reports whether ts is strictly after the channel's watermark.
func (w Watermarks) IsNewer(channelID, ts string) bool {
	return ts > w.Get(channelID)
}
