package model

import (
	"github.com/carewell-lab/saheli/pkg/domain/types"
)

// TriggerMatch is one detected trigger category with its category-specific
// metadata. Detection returns all matching categories in rule order;
// composition later picks only the highest-priority one.
type TriggerMatch struct {
	Trigger types.EmotionalTrigger

	// SurfaceBehavior and PsychologicalRoot describe the clinical reading
	// of the matched category.
	SurfaceBehavior   string
	PsychologicalRoot string

	// RiskLevel is set for money-anxiety matches only
	RiskLevel types.RiskLevel

	// MentionsToday is set for sister-urgency matches only; the same-day
	// mention count is supplied by the caller.
	MentionsToday int
}

// ComposedResponse is the outcome of composing a spoken response for one
// patient utterance. State is always the classifier's value for the same
// input; composition never alters it.
type ComposedResponse struct {
	State        types.CognitiveState
	Triggers     []types.EmotionalTrigger
	Utterance    string `masq:"secret"`
	ClinicalNote string
}

// ScheduledPrompt is a proactive scripted utterance tied to a fixed
// time-of-day care event, independent of conversational state.
type ScheduledPrompt struct {
	Purpose   types.SchedulePurpose
	Utterance string
}
