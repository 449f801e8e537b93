package usecase_test

import (
	"strings"
	"testing"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestComposeResponse(t *testing.T) {
	profile := model.DefaultProfile()

	t.Run("money match suppresses all other triggers", func(t *testing.T) {
		matches := usecase.DetectTriggers("they stole money, I want to go home, where is pankaj, call my sister", at(10, 0), 0)
		gt.Number(t, len(matches)).NotEqual(1) // several categories matched

		resp := usecase.ComposeResponse(profile, types.StateAgitated, matches)
		gt.Array(t, resp.Triggers).Equal([]types.EmotionalTrigger{types.TriggerMoneyAnxiety})
		gt.Value(t, resp.ClinicalNote).Equal("Patient expressing competence grief via financial paranoia")
		gt.B(t, strings.Contains(resp.Utterance, "Suhasini")).True()
	})

	t.Run("sister beats home and pankaj", func(t *testing.T) {
		matches := usecase.DetectTriggers("my sister should see my home, tell pankaj", at(10, 0), 1)
		resp := usecase.ComposeResponse(profile, types.StateStable, matches)
		gt.Array(t, resp.Triggers).Equal([]types.EmotionalTrigger{types.TriggerSisterUrgency})
	})

	t.Run("home longing", func(t *testing.T) {
		matches := usecase.DetectTriggers("I want my ghar", at(10, 0), 0)
		resp := usecase.ComposeResponse(profile, types.StateStable, matches)
		gt.Array(t, resp.Triggers).Equal([]types.EmotionalTrigger{types.TriggerHomeLonging})
		gt.B(t, strings.Contains(resp.Utterance, "Solapur")).True()
	})

	t.Run("pankaj safety reassurance", func(t *testing.T) {
		matches := usecase.DetectTriggers("Where is Pankaj?", at(8, 0), 0)
		resp := usecase.ComposeResponse(profile, types.StateStable, matches)
		gt.Array(t, resp.Triggers).Equal([]types.EmotionalTrigger{types.TriggerPankajSafety})
		gt.B(t, strings.HasPrefix(resp.Utterance, "Pankaj is safe.")).True()
		gt.Value(t, resp.ClinicalNote).Equal("Maternal identity preservation")
	})

	t.Run("baseline prompt when nothing matched", func(t *testing.T) {
		resp := usecase.ComposeResponse(profile, types.StateStable, nil)
		gt.Array(t, resp.Triggers).Length(0)
		gt.Value(t, resp.ClinicalNote).Equal("Baseline engagement")
		gt.B(t, strings.Contains(resp.Utterance, "Suhasini")).True()
	})

	t.Run("state passes through unchanged", func(t *testing.T) {
		for _, state := range types.AllCognitiveStates() {
			resp := usecase.ComposeResponse(profile, state, nil)
			gt.Value(t, resp.State).Equal(state)
		}
	})
}
