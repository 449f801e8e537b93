package model

import (
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ScheduleEntry is one fixed daily care event: a time-of-day with the
// proactive utterance the companion speaks at exactly that minute.
type ScheduleEntry struct {
	TimeOfDay string // "HH:MM", 24-hour clock
	Purpose   types.SchedulePurpose
	Utterance string
}

// Validate checks that the schedule entry is well-formed
func (e *ScheduleEntry) Validate() error {
	if _, err := time.Parse("15:04", e.TimeOfDay); err != nil {
		return goerr.Wrap(err, "invalid schedule time", goerr.V("time", e.TimeOfDay))
	}
	if !e.Purpose.IsValid() {
		return goerr.New("invalid schedule purpose", goerr.V("purpose", e.Purpose.String()))
	}
	if e.Utterance == "" {
		return goerr.New("schedule utterance is required", goerr.V("purpose", e.Purpose.String()))
	}
	return nil
}

// Matches reports whether the entry fires at the given wall-clock time.
// Matching is exact to the minute.
func (e *ScheduleEntry) Matches(t time.Time) bool {
	return t.Format("15:04") == e.TimeOfDay
}

// DefaultSchedule returns the fixed daily care schedule. Entries must have
// mutually distinct times so at most one can match a given minute.
func DefaultSchedule() []ScheduleEntry {
	return []ScheduleEntry{
		{
			TimeOfDay: "08:00",
			Purpose:   types.PurposeMorningMedication,
			Utterance: "Good morning, Suhasini. Pankaj wanted me to remind you - your tablets are ready.",
		},
		{
			TimeOfDay: "15:30",
			Purpose:   types.PurposePreSundownIntervention,
			Utterance: "Suhasini, let's have chai. Tell me about your days at Vaishampa Hospital.",
		},
		{
			TimeOfDay: "18:00",
			Purpose:   types.PurposeEveningRitual,
			Utterance: "You've had a productive day. Shall we call Pankaj?",
		},
	}
}

// ValidateSchedule validates each entry and rejects duplicate times
func ValidateSchedule(entries []ScheduleEntry) error {
	seen := make(map[string]bool)
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid schedule entry")
		}
		if seen[entries[i].TimeOfDay] {
			return goerr.New("duplicate schedule time", goerr.V("time", entries[i].TimeOfDay))
		}
		seen[entries[i].TimeOfDay] = true
	}
	return nil
}
