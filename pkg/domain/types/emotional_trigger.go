package types

import "github.com/m-mizutani/goerr/v2"

// EmotionalTrigger represents a detected emotional trigger category.
// Zero or more triggers may attach to one interaction.
type EmotionalTrigger string

const (
	TriggerMoneyAnxiety   EmotionalTrigger = "money_anxiety"
	TriggerSisterUrgency  EmotionalTrigger = "sister_urgency"
	TriggerPankajSafety   EmotionalTrigger = "pankaj_safety"
	TriggerHomeLonging    EmotionalTrigger = "home_longing"
	TriggerMaternalGrief  EmotionalTrigger = "maternal_grief"
	TriggerIsolationPanic EmotionalTrigger = "isolation_panic"
	TriggerCompetenceLoss EmotionalTrigger = "competence_loss"
)

// AllEmotionalTriggers returns all valid emotional triggers
func AllEmotionalTriggers() []EmotionalTrigger {
	return []EmotionalTrigger{
		TriggerMoneyAnxiety,
		TriggerSisterUrgency,
		TriggerPankajSafety,
		TriggerHomeLonging,
		TriggerMaternalGrief,
		TriggerIsolationPanic,
		TriggerCompetenceLoss,
	}
}

// IsValid checks if the emotional trigger is valid
func (t EmotionalTrigger) IsValid() bool {
	switch t {
	case TriggerMoneyAnxiety,
		TriggerSisterUrgency,
		TriggerPankajSafety,
		TriggerHomeLonging,
		TriggerMaternalGrief,
		TriggerIsolationPanic,
		TriggerCompetenceLoss:
		return true
	default:
		return false
	}
}

// String returns the string representation of the emotional trigger
func (t EmotionalTrigger) String() string {
	return string(t)
}

// ParseEmotionalTrigger parses a string into an EmotionalTrigger
func ParseEmotionalTrigger(s string) (EmotionalTrigger, error) {
	trigger := EmotionalTrigger(s)
	if !trigger.IsValid() {
		return "", goerr.New("invalid emotional trigger", goerr.V("trigger", s))
	}
	return trigger, nil
}
