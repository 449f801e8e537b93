package usecase_test

import (
	"testing"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 2, 1, hour, minute, 0, 0, time.UTC)
}

func TestClassifyState(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		at        time.Time
		want      types.CognitiveState
	}{
		{
			name:      "sundowning window start",
			utterance: "",
			at:        at(16, 0),
			want:      types.StateSundowning,
		},
		{
			name:      "sundowning window end is inclusive",
			utterance: "what a nice evening",
			at:        at(19, 59),
			want:      types.StateSundowning,
		},
		{
			name:      "money keyword before window",
			utterance: "someone stole my money",
			at:        at(10, 0),
			want:      types.StateAgitated,
		},
		{
			name:      "window overrides money keyword",
			utterance: "Someone stole money from my house!",
			at:        at(16, 0),
			want:      types.StateSundowning,
		},
		{
			name:      "home keyword after midafternoon outside window",
			utterance: "I want to go to Solapur",
			at:        at(20, 0),
			want:      types.StateTemporalDisplacement,
		},
		{
			name:      "home keyword in morning is stable",
			utterance: "I want to go home",
			at:        at(9, 0),
			want:      types.StateStable,
		},
		{
			name:      "pankaj question in morning is stable",
			utterance: "Where is Pankaj?",
			at:        at(8, 0),
			want:      types.StateStable,
		},
		{
			name:      "empty utterance outside window",
			utterance: "",
			at:        at(11, 0),
			want:      types.StateStable,
		},
		{
			name:      "keyword matching is case-insensitive",
			utterance: "CHORI! CHORI!",
			at:        at(9, 0),
			want:      types.StateAgitated,
		},
		{
			name:      "substring inside unrelated word still matches",
			utterance: "the bus was late",
			at:        at(20, 0),
			want:      types.StateTemporalDisplacement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, usecase.ClassifyState(tt.utterance, tt.at)).Equal(tt.want)
		})
	}
}

// The sundowning window dominates every content rule. Sweep all hours with
// an utterance that matches both money and home keywords.
func TestClassifyState_WindowPrecedence(t *testing.T) {
	utterance := "they loot money from my home in solapur"
	for hour := 0; hour < 24; hour++ {
		state := usecase.ClassifyState(utterance, at(hour, 30))
		if hour >= 16 && hour <= 19 {
			gt.Value(t, state).Equal(types.StateSundowning)
		} else {
			gt.Value(t, state).Equal(types.StateAgitated)
		}
	}
}

// ClassifyState never emits episode or confused; those enter the log only
// through external annotation.
func TestClassifyState_ClosedOutput(t *testing.T) {
	utterances := []string{"", "episode", "confused", "money", "solapur ghar", "sister tai"}
	for _, u := range utterances {
		for hour := 0; hour < 24; hour++ {
			state := usecase.ClassifyState(u, at(hour, 0))
			gt.B(t, state != types.StateEpisode).True()
			gt.B(t, state != types.StateConfused).True()
		}
	}
}
