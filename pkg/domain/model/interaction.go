package model

import (
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// InteractionID is a unique identifier for an interaction record
type InteractionID string

// NewInteractionID generates a new UUID v4 InteractionID
func NewInteractionID() InteractionID {
	return InteractionID(uuid.New().String())
}

// String returns the string representation of InteractionID
func (i InteractionID) String() string {
	return string(i)
}

// InteractionRecord is the unit passed to aggregation: one labeled
// interaction with exactly one cognitive state and zero or more triggers.
// Records are immutable once emitted; repositories return copies.
//
// Utterance and Response carry patient speech and are redacted from logs.
type InteractionRecord struct {
	ID        InteractionID
	Timestamp time.Time
	State     types.CognitiveState
	Triggers  []types.EmotionalTrigger
	Source    types.RecordSource

	Utterance    string `masq:"secret"`
	Response     string `masq:"secret"`
	ClinicalNote string
}

// Validate checks that the record is well-formed before it enters the log
func (r *InteractionRecord) Validate() error {
	if r.Timestamp.IsZero() {
		return goerr.New("interaction timestamp is required")
	}
	if !r.State.IsValid() {
		return goerr.New("invalid cognitive state", goerr.V("state", r.State.String()))
	}
	if !r.Source.Normalize().IsValid() {
		return goerr.New("invalid record source", goerr.V("source", r.Source.String()))
	}
	for _, trigger := range r.Triggers {
		if !trigger.IsValid() {
			return goerr.New("invalid emotional trigger", goerr.V("trigger", trigger.String()))
		}
	}
	return nil
}

// Clone returns a deep copy of the record
func (r *InteractionRecord) Clone() *InteractionRecord {
	clone := *r
	if r.Triggers != nil {
		clone.Triggers = make([]types.EmotionalTrigger, len(r.Triggers))
		copy(clone.Triggers, r.Triggers)
	}
	return &clone
}
