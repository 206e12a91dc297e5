//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// SkipReason explains why a search hit was not processed
// ENUM(no_channel,not_newer,ineligible)
type SkipReason string
