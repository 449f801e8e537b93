package usecase

import (
	"strings"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
)

// Detector keyword sets. They are intentionally not shared with the
// classifier tables: "what the patient is reacting to" and "how the
// patient feels" are separate rule sets even where the words overlap.
var (
	detectorMoneyWords  = []string{"loot", "steal", "rob", "money", "taken", "chori"}
	detectorSisterWords = []string{"sister", "behen", "tai"}
	detectorHomeWords   = []string{"solapur", "home", "ghar"}
	detectorPankajWords = []string{"pankaj"}
)

// triggerRule is one detector category: a non-empty keyword set plus an
// annotate hook that fills category-specific metadata on the match.
type triggerRule struct {
	trigger  types.EmotionalTrigger
	keywords []string
	annotate func(m *model.TriggerMatch, at time.Time, sisterMentionsToday int)
}

// triggerRules are evaluated independently; a single utterance may match
// several categories and the detector returns them all in this order.
var triggerRules = []triggerRule{
	{
		trigger:  types.TriggerMoneyAnxiety,
		keywords: detectorMoneyWords,
		annotate: func(m *model.TriggerMatch, at time.Time, _ int) {
			m.SurfaceBehavior = "Reports money/property theft"
			m.PsychologicalRoot = "Grief for lost competence and agency"
			if at.Hour() >= sundownStartHour {
				m.RiskLevel = types.RiskHigh
			} else {
				m.RiskLevel = types.RiskModerate
			}
		},
	},
	{
		trigger:  types.TriggerSisterUrgency,
		keywords: detectorSisterWords,
		annotate: func(m *model.TriggerMatch, _ time.Time, sisterMentionsToday int) {
			m.SurfaceBehavior = "Repeatedly mentions sister"
			m.PsychologicalRoot = "Anticipatory grief + last biological witness"
			m.MentionsToday = sisterMentionsToday
		},
	},
	{
		trigger:  types.TriggerHomeLonging,
		keywords: detectorHomeWords,
		annotate: func(m *model.TriggerMatch, _ time.Time, _ int) {
			m.SurfaceBehavior = "Asks to go home"
			m.PsychologicalRoot = "Temporal displacement - seeking identity-anchored location"
		},
	},
	{
		trigger:  types.TriggerPankajSafety,
		keywords: detectorPankajWords,
		annotate: func(m *model.TriggerMatch, _ time.Time, _ int) {
			m.SurfaceBehavior = "Asks where Pankaj is"
			m.PsychologicalRoot = "Maternal identity preservation + role reversal anxiety"
		},
	},
}

// DetectTriggers scans an utterance against the ordered trigger categories
// and returns all matches with their metadata. Categories with no match
// produce no entry. sisterMentionsToday is the caller-supplied same-day
// mention count attached to sister-urgency matches. Pure function.
func DetectTriggers(utterance string, at time.Time, sisterMentionsToday int) []model.TriggerMatch {
	lowered := strings.ToLower(utterance)

	var matches []model.TriggerMatch
	for _, rule := range triggerRules {
		if !containsAny(lowered, rule.keywords) {
			continue
		}
		m := model.TriggerMatch{Trigger: rule.trigger}
		rule.annotate(&m, at, sisterMentionsToday)
		matches = append(matches, m)
	}
	return matches
}
