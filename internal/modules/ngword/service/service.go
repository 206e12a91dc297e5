package service

import (
	"strings"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/modules/ngword/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service holds the NG-word list for one run
type Service struct {
	source repository.Source
	words  []string
}

// New creates a new ng-word service
func New(source repository.Source) *Service {
	return &Service{source: source}
}

// Load reads the word list from the source. It replaces any previously
// loaded list.
func (s *Service) Load() error {
	words, err := s.source.Load()
	if err != nil {
		return oops.With("context", "failed to load ng-words").Wrap(err)
	}
	s.words = words
	return nil
}

// Words returns a copy of the loaded word list
func (s *Service) Words() []string {
	return append([]string(nil), s.words...)
}

// FindMatches returns the words of the list, in list order, that occur in
// text as literal substrings. Matching is case-sensitive and blank words
// are ignored.
func FindMatches(text string, words []string) []string {
	return lo.Filter(words, func(word string, _ int) bool {
		if strings.TrimSpace(word) == "" {
			return false
		}
		return strings.Contains(text, word)
	})
}
