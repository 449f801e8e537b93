package usecase

import (
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
)

// ScheduleUseCase maps a wall-clock time-of-day to a proactive scripted
// utterance from the fixed daily care schedule. It never consults the
// trigger detector or state classifier.
type ScheduleUseCase struct {
	entries []model.ScheduleEntry
}

func NewScheduleUseCase(entries []model.ScheduleEntry) *ScheduleUseCase {
	return &ScheduleUseCase{entries: entries}
}

// Lookup returns the proactive prompt for the given time, or nil when no
// schedule entry matches the exact minute. Entry times are mutually
// distinct, so at most one entry can match.
func (uc *ScheduleUseCase) Lookup(at time.Time) *model.ScheduledPrompt {
	for i := range uc.entries {
		if uc.entries[i].Matches(at) {
			return &model.ScheduledPrompt{
				Purpose:   uc.entries[i].Purpose,
				Utterance: uc.entries[i].Utterance,
			}
		}
	}
	return nil
}

// Entries returns a copy of the schedule table
func (uc *ScheduleUseCase) Entries() []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, len(uc.entries))
	copy(out, uc.entries)
	return out
}
