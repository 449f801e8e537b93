package usecase

import (
	"strings"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/types"
)

// Sundowning window boundaries, inclusive on both ends
const (
	sundownStartHour = 16
	sundownEndHour   = 19
)

// Keyword matching is deliberately literal: lower-cased substring
// containment, no tokenization or stemming. A keyword inside an unrelated
// word still matches; that imprecision is accepted policy.
var (
	classifierMoneyWords = []string{"loot", "steal", "chori", "money"}
	classifierHomeWords  = []string{"solapur", "ghar", "home", "bus"}
)

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// stateRule is one (predicate, outcome) pair in the classification chain.
// The predicate receives the already lower-cased utterance.
type stateRule struct {
	name  string
	match func(lowered string, at time.Time) bool
	state types.CognitiveState
}

// stateRules is evaluated top to bottom and the first match wins. The
// ordering is clinical policy: the circadian sundowning window dominates
// all content rules, so reordering changes classification for every
// utterance in that window.
var stateRules = []stateRule{
	{
		name: "sundowning_window",
		match: func(_ string, at time.Time) bool {
			h := at.Hour()
			return h >= sundownStartHour && h <= sundownEndHour
		},
		state: types.StateSundowning,
	},
	{
		name: "money_content",
		match: func(lowered string, _ time.Time) bool {
			return containsAny(lowered, classifierMoneyWords)
		},
		state: types.StateAgitated,
	},
	{
		name: "home_after_midafternoon",
		match: func(lowered string, at time.Time) bool {
			return containsAny(lowered, classifierHomeWords) && at.Hour() > 15
		},
		state: types.StateTemporalDisplacement,
	},
}

// ClassifyState derives a single cognitive state from an utterance and its
// timestamp. It never returns episode: that state only enters the log via
// caregiver or clinician annotation.
func ClassifyState(utterance string, at time.Time) types.CognitiveState {
	lowered := strings.ToLower(utterance)
	for _, rule := range stateRules {
		if rule.match(lowered, at) {
			return rule.state
		}
	}
	return types.StateStable
}
