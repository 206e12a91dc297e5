package repository

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads NG-words from the first column of a CSV file
type CSVSource struct {
	path string
}

// NewCSVSource creates a word source backed by the CSV file at path
func NewCSVSource(path string) Source {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("path", s.path).Wrap(errors.ErrNGWordSourceMissing)
		}
		return nil, oops.With("path", s.path, "context", "failed to read ng-word source").Wrap(err)
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, oops.With("path", s.path, "context", "failed to parse ng-word source").Wrap(err)
	}

	words := lo.FilterMap(records, func(record []string, _ int) (string, bool) {
		if len(record) == 0 {
			return "", false
		}
		word := strings.TrimSpace(record[0])
		return word, word != ""
	})

	return words, nil
}
