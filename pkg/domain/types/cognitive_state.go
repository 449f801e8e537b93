package types

import "github.com/m-mizutani/goerr/v2"

// CognitiveState represents the single cognitive state label attached to
// one interaction. Exactly one state is active per classified interaction.
type CognitiveState string

const (
	StateStable               CognitiveState = "stable"
	StateAgitated             CognitiveState = "agitated"
	StateConfused             CognitiveState = "confused"
	StateSundowning           CognitiveState = "sundowning"
	StateEpisode              CognitiveState = "episode"
	StateTemporalDisplacement CognitiveState = "temporal_displacement"
)

// AllCognitiveStates returns all valid cognitive states
func AllCognitiveStates() []CognitiveState {
	return []CognitiveState{
		StateStable,
		StateAgitated,
		StateConfused,
		StateSundowning,
		StateEpisode,
		StateTemporalDisplacement,
	}
}

// IsValid checks if the cognitive state is valid
func (s CognitiveState) IsValid() bool {
	switch s {
	case StateStable,
		StateAgitated,
		StateConfused,
		StateSundowning,
		StateEpisode,
		StateTemporalDisplacement:
		return true
	default:
		return false
	}
}

// String returns the string representation of the cognitive state
func (s CognitiveState) String() string {
	return string(s)
}

// ParseCognitiveState parses a string into a CognitiveState
func ParseCognitiveState(s string) (CognitiveState, error) {
	state := CognitiveState(s)
	if !state.IsValid() {
		return "", goerr.New("invalid cognitive state", goerr.V("state", s))
	}
	return state, nil
}
