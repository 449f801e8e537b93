package types

import "github.com/m-mizutani/goerr/v2"

// SchedulePurpose identifies a proactive daily event in the care schedule
type SchedulePurpose string

const (
	PurposeMorningMedication      SchedulePurpose = "morning_medication"
	PurposePreSundownIntervention SchedulePurpose = "pre_sundown_intervention"
	PurposeEveningRitual          SchedulePurpose = "evening_ritual"
)

// AllSchedulePurposes returns all valid schedule purposes
func AllSchedulePurposes() []SchedulePurpose {
	return []SchedulePurpose{
		PurposeMorningMedication,
		PurposePreSundownIntervention,
		PurposeEveningRitual,
	}
}

// IsValid checks if the schedule purpose is valid
func (p SchedulePurpose) IsValid() bool {
	switch p {
	case PurposeMorningMedication,
		PurposePreSundownIntervention,
		PurposeEveningRitual:
		return true
	default:
		return false
	}
}

// String returns the string representation of the schedule purpose
func (p SchedulePurpose) String() string {
	return string(p)
}

// ParseSchedulePurpose parses a string into a SchedulePurpose
func ParseSchedulePurpose(s string) (SchedulePurpose, error) {
	purpose := SchedulePurpose(s)
	if !purpose.IsValid() {
		return "", goerr.New("invalid schedule purpose", goerr.V("purpose", s))
	}
	return purpose, nil
}
