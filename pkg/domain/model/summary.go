package model

import (
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/types"
)

// ConcernCount is one trigger label with its occurrence count
type ConcernCount struct {
	Trigger types.EmotionalTrigger
	Count   int
}

// DailySummary is a derived, non-authoritative view over one day of
// interaction records. It is always recomputed from the full record
// sequence, never cached or incrementally updated.
type DailySummary struct {
	Date        time.Time
	RecordCount int

	OverallState       types.OverallState
	StateCounts        map[types.CognitiveState]int
	DominantConcerns   []ConcernCount
	EpisodeCount       int
	SundowningCount    int
	SundowningSeverity types.SundowningSeverity

	Narrative          string
	ActionableInsights []string
}

// PatternStatement is one free-text weekly observation together with the
// counts it was derived from. Every claim must be traceable to the counts.
type PatternStatement struct {
	Statement string
	Evidence  map[string]int
}

// WeeklySummary aggregates cross-day trigger and state counts into
// pattern statements and treatment suggestions.
type WeeklySummary struct {
	WeekStart   time.Time
	DayCount    int
	RecordCount int

	StateCounts      map[types.CognitiveState]int
	DominantConcerns []ConcernCount
	SundowningDays   int
	EpisodeDays      int

	Patterns        []PatternStatement
	Recommendations []string
}
