package usecase_test

import (
	"testing"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func triggersOf(matches []model.TriggerMatch) []types.EmotionalTrigger {
	out := make([]types.EmotionalTrigger, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Trigger)
	}
	return out
}

func TestDetectTriggers(t *testing.T) {
	t.Run("empty utterance matches nothing", func(t *testing.T) {
		gt.Array(t, usecase.DetectTriggers("", at(10, 0), 0)).Length(0)
	})

	t.Run("single category match", func(t *testing.T) {
		matches := usecase.DetectTriggers("where is pankaj", at(8, 0), 0)
		gt.Array(t, triggersOf(matches)).Equal([]types.EmotionalTrigger{types.TriggerPankajSafety})
	})

	t.Run("categories are evaluated independently", func(t *testing.T) {
		matches := usecase.DetectTriggers("they stole money and I want to go home to solapur, call my sister", at(10, 0), 2)
		gt.Array(t, triggersOf(matches)).Equal([]types.EmotionalTrigger{
			types.TriggerMoneyAnxiety,
			types.TriggerSisterUrgency,
			types.TriggerHomeLonging,
		})
	})

	t.Run("keyword inside unrelated word still matches", func(t *testing.T) {
		// "rob" inside "robust" is accepted imprecision
		matches := usecase.DetectTriggers("a robust plan", at(10, 0), 0)
		gt.Array(t, triggersOf(matches)).Equal([]types.EmotionalTrigger{types.TriggerMoneyAnxiety})
	})
}

func TestDetectTriggers_MoneyRiskLevel(t *testing.T) {
	t.Run("moderate before 16:00", func(t *testing.T) {
		matches := usecase.DetectTriggers("chori", at(15, 59), 0)
		gt.Array(t, matches).Length(1)
		gt.Value(t, matches[0].RiskLevel).Equal(types.RiskModerate)
	})

	t.Run("high from 16:00", func(t *testing.T) {
		matches := usecase.DetectTriggers("chori", at(16, 0), 0)
		gt.Array(t, matches).Length(1)
		gt.Value(t, matches[0].RiskLevel).Equal(types.RiskHigh)
	})
}

func TestDetectTriggers_SisterMentions(t *testing.T) {
	matches := usecase.DetectTriggers("I must talk to tai", at(9, 0), 4)
	gt.Array(t, matches).Length(1)
	gt.Value(t, matches[0].Trigger).Equal(types.TriggerSisterUrgency)
	gt.Number(t, matches[0].MentionsToday).Equal(4)
}
