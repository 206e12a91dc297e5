package errors

import "errors"

var (
	ErrMissingChannelID  = errors.New("CHANNEL_ID environment variable is required")
	ErrMissingSlackToken = errors.New("SLACK_TOKEN environment variable is required")
	ErrMissingNGWordsCSV = errors.New("NGWORDS_CSV environment variable is required")

	ErrNGWordSourceMissing = errors.New("ng-word source not found")
	ErrCorruptWatermarks   = errors.New("watermark file is corrupt")

	ErrSearchFailed    = errors.New("message search failed")
	ErrMalformedSearch = errors.New("search response has no message matches")
	ErrPostFailed      = errors.New("alert post failed")
	ErrChannelInfo     = errors.New("channel info unavailable")
)

// IsConfiguration reports whether err should stop the process before a run starts.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrMissingChannelID) ||
		errors.Is(err, ErrMissingSlackToken) ||
		errors.Is(err, ErrMissingNGWordsCSV) ||
		errors.Is(err, ErrNGWordSourceMissing) ||
		errors.Is(err, ErrCorruptWatermarks)
}
