package model_test

import (
	"testing"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestInteractionRecord_Validate(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  model.InteractionRecord
		wantErr bool
	}{
		{
			name: "valid conversational record",
			record: model.InteractionRecord{
				Timestamp: now,
				State:     types.StateStable,
				Triggers:  []types.EmotionalTrigger{types.TriggerPankajSafety},
			},
		},
		{
			name: "valid record without triggers",
			record: model.InteractionRecord{
				Timestamp: now,
				State:     types.StateSundowning,
			},
		},
		{
			name: "missing timestamp",
			record: model.InteractionRecord{
				State: types.StateStable,
			},
			wantErr: true,
		},
		{
			name: "invalid state",
			record: model.InteractionRecord{
				Timestamp: now,
				State:     types.CognitiveState("cheerful"),
			},
			wantErr: true,
		},
		{
			name: "invalid trigger",
			record: model.InteractionRecord{
				Timestamp: now,
				State:     types.StateStable,
				Triggers:  []types.EmotionalTrigger{"small_talk"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestInteractionRecord_Clone(t *testing.T) {
	original := &model.InteractionRecord{
		ID:        model.NewInteractionID(),
		Timestamp: time.Date(2026, 2, 1, 16, 0, 0, 0, time.UTC),
		State:     types.StateSundowning,
		Triggers:  []types.EmotionalTrigger{types.TriggerMoneyAnxiety},
	}

	clone := original.Clone()
	clone.Triggers[0] = types.TriggerSisterUrgency
	clone.State = types.StateStable

	gt.Value(t, original.Triggers[0]).Equal(types.TriggerMoneyAnxiety)
	gt.Value(t, original.State).Equal(types.StateSundowning)
}
