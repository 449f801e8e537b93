package usecase

import (
	"fmt"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
)

// composeRule is one priority branch of the response composer. Exactly one
// branch fires per utterance, tested in declaration order, however many
// categories the detector found: the response always addresses the
// highest-priority concern and suppresses the rest from the output.
type composeRule struct {
	trigger types.EmotionalTrigger
	build   func(p *model.Profile) (utterance, clinicalNote string)
}

var composeRules = []composeRule{
	{
		trigger: types.TriggerMoneyAnxiety,
		build: func(p *model.Profile) (string, string) {
			return fmt.Sprintf(
					"%s, you're right to keep track. You worked hard for your two houses in %s. Let's make sure everything is documented - tell me about your Shivajinagar property.",
					p.FirstName(), p.DisplacementFrom),
				"Patient expressing competence grief via financial paranoia"
		},
	},
	{
		trigger: types.TriggerSisterUrgency,
		build: func(p *model.Profile) (string, string) {
			return "I know you have something important for your sister. She'll want to hear about your Vaishampa Hospital days. Should we call her?",
				"Patient seeking final witness to pre-disease identity"
		},
	},
	{
		trigger: types.TriggerHomeLonging,
		build: func(p *model.Profile) (string, string) {
			return fmt.Sprintf(
					"I know %s is where your heart is. Tell me about your Shivajinagar home.",
					p.DisplacementFrom),
				"Temporal displacement - seeking identity-anchored location"
		},
	},
	{
		trigger: types.TriggerPankajSafety,
		build: func(p *model.Profile) (string, string) {
			return fmt.Sprintf(
					"%s is safe. He wanted your guidance - what advice should I give him?",
					p.PrimaryAttachment),
				"Maternal identity preservation"
		},
	},
}

func hasMatch(matches []model.TriggerMatch, trigger types.EmotionalTrigger) bool {
	for _, m := range matches {
		if m.Trigger == trigger {
			return true
		}
	}
	return false
}

// ComposeResponse selects one scripted response for the classified state
// and detected triggers. The state is passed through unchanged; the output
// triggers list carries only the winning category, or nothing for the
// baseline prompt.
func ComposeResponse(profile *model.Profile, state types.CognitiveState, matches []model.TriggerMatch) *model.ComposedResponse {
	for _, rule := range composeRules {
		if !hasMatch(matches, rule.trigger) {
			continue
		}
		utterance, note := rule.build(profile)
		return &model.ComposedResponse{
			State:        state,
			Triggers:     []types.EmotionalTrigger{rule.trigger},
			Utterance:    utterance,
			ClinicalNote: note,
		}
	}

	return &model.ComposedResponse{
		State:        state,
		Triggers:     nil,
		Utterance:    fmt.Sprintf("I'm here with you, %s. What are you thinking about?", profile.FirstName()),
		ClinicalNote: "Baseline engagement",
	}
}
