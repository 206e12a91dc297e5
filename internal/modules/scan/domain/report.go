package domain

import (
	"time"

	watermarkDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/watermark/domain"
)

// Report summarizes one run
type Report struct {
	StartedAt time.Time
	Searched  int
	Processed int
	NG        int
	Skipped   map[SkipReason]int

	// Watermarks is the map after the run, including this run's advances
	Watermarks watermarkDomain.Watermarks
}

// NewReport creates an empty report for a run starting at startedAt
func NewReport(startedAt time.Time, marks watermarkDomain.Watermarks) *Report {
	return &Report{
		StartedAt:  startedAt,
		Skipped:    make(map[SkipReason]int),
		Watermarks: marks,
	}
}
