package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// InsightUseCase rolls interaction logs up into daily and weekly summaries
// for the clinician dashboard. Summaries are always recomputed from the
// supplied record sequence; they are never cached or updated in place.
type InsightUseCase struct {
	repo interfaces.Repository
}

func NewInsightUseCase(repo interfaces.Repository) *InsightUseCase {
	return &InsightUseCase{repo: repo}
}

// rankConcerns counts trigger occurrences over the records and returns the
// top n by count, descending. Ties keep first-encountered order, so the
// sort must be stable.
func rankConcerns(records []*model.InteractionRecord, n int) []model.ConcernCount {
	counts := make(map[types.EmotionalTrigger]int)
	var order []types.EmotionalTrigger
	for _, rec := range records {
		for _, trigger := range rec.Triggers {
			if counts[trigger] == 0 {
				order = append(order, trigger)
			}
			counts[trigger]++
		}
	}

	concerns := make([]model.ConcernCount, 0, len(order))
	for _, trigger := range order {
		concerns = append(concerns, model.ConcernCount{Trigger: trigger, Count: counts[trigger]})
	}
	sort.SliceStable(concerns, func(i, j int) bool {
		return concerns[i].Count > concerns[j].Count
	})
	if len(concerns) > n {
		concerns = concerns[:n]
	}
	return concerns
}

func countStates(records []*model.InteractionRecord) map[types.CognitiveState]int {
	counts := make(map[types.CognitiveState]int)
	for _, rec := range records {
		counts[rec.State]++
	}
	return counts
}

// SummarizeDaily computes the daily summary over the supplied records.
// An empty record sequence yields zero counts and a neutral STABLE state.
func (uc *InsightUseCase) SummarizeDaily(date time.Time, records []*model.InteractionRecord) *model.DailySummary {
	stateCounts := countStates(records)

	overall := types.OverallStable
	// Tie goes to elevated: stable must strictly exceed half the records.
	if len(records) > 0 && stateCounts[types.StateStable]*2 <= len(records) {
		overall = types.OverallElevatedDistress
	}

	sundowning := stateCounts[types.StateSundowning]
	summary := &model.DailySummary{
		Date:               date,
		RecordCount:        len(records),
		OverallState:       overall,
		StateCounts:        stateCounts,
		DominantConcerns:   rankConcerns(records, 3),
		EpisodeCount:       stateCounts[types.StateEpisode],
		SundowningCount:    sundowning,
		SundowningSeverity: types.SeverityForCount(sundowning),
		Narrative:          fmt.Sprintf("Patient experienced %d interactions with varying cognitive states.", len(records)),
	}

	if summary.SundowningSeverity != types.SeverityNone {
		summary.ActionableInsights = append(summary.ActionableInsights, "Monitor sundown episodes")
	}
	if len(summary.DominantConcerns) > 0 {
		summary.ActionableInsights = append(summary.ActionableInsights, "Track trigger patterns")
	}
	if summary.EpisodeCount > 0 {
		summary.ActionableInsights = append(summary.ActionableInsights, "Review caregiver-confirmed episodes")
	}

	return summary
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SummarizeWeekly aggregates cross-day state and trigger counts into
// pattern statements and treatment suggestions. Every statement carries
// the counts it was derived from; nothing is claimed that is not present
// in the supplied records.
func (uc *InsightUseCase) SummarizeWeekly(records []*model.InteractionRecord) *model.WeeklySummary {
	stateCounts := countStates(records)
	concerns := rankConcerns(records, 3)

	days := make(map[string][]*model.InteractionRecord)
	var weekStart time.Time
	for _, rec := range records {
		days[dateKey(rec.Timestamp)] = append(days[dateKey(rec.Timestamp)], rec)
		if weekStart.IsZero() || rec.Timestamp.Before(weekStart) {
			weekStart = rec.Timestamp
		}
	}

	var sundowningDays, episodeDays int
	for _, dayRecords := range days {
		dayStates := countStates(dayRecords)
		if dayStates[types.StateSundowning] > 0 {
			sundowningDays++
		}
		if dayStates[types.StateEpisode] > 0 {
			episodeDays++
		}
	}

	summary := &model.WeeklySummary{
		WeekStart:        weekStart,
		DayCount:         len(days),
		RecordCount:      len(records),
		StateCounts:      stateCounts,
		DominantConcerns: concerns,
		SundowningDays:   sundowningDays,
		EpisodeDays:      episodeDays,
	}

	if sundowningDays > 0 {
		summary.Patterns = append(summary.Patterns, model.PatternStatement{
			Statement: fmt.Sprintf("Sundowning occurred on %d of %d recorded days (%d records).",
				sundowningDays, len(days), stateCounts[types.StateSundowning]),
			Evidence: map[string]int{
				"sundowning_days":    sundowningDays,
				"recorded_days":      len(days),
				"sundowning_records": stateCounts[types.StateSundowning],
			},
		})
	}
	if len(concerns) > 0 {
		top := concerns[0]
		summary.Patterns = append(summary.Patterns, model.PatternStatement{
			Statement: fmt.Sprintf("Most frequent concern was %s with %d mentions across the week.",
				top.Trigger, top.Count),
			Evidence: map[string]int{top.Trigger.String(): top.Count},
		})
	}
	if stateCounts[types.StateEpisode] > 0 {
		summary.Patterns = append(summary.Patterns, model.PatternStatement{
			Statement: fmt.Sprintf("%d caregiver-confirmed episodes across %d days.",
				stateCounts[types.StateEpisode], episodeDays),
			Evidence: map[string]int{
				"episode_records": stateCounts[types.StateEpisode],
				"episode_days":    episodeDays,
			},
		})
	}

	if sundowningDays >= 3 {
		summary.Recommendations = append(summary.Recommendations,
			"Shift the pre-sundown intervention earlier and review late-afternoon medication timing")
	}
	if len(concerns) > 0 {
		switch concerns[0].Trigger {
		case types.TriggerMoneyAnxiety:
			summary.Recommendations = append(summary.Recommendations,
				"Reinforce financial reassurance: review property documents together during stable hours")
		case types.TriggerSisterUrgency:
			summary.Recommendations = append(summary.Recommendations,
				"Arrange a supervised call with her sister")
		case types.TriggerPankajSafety:
			summary.Recommendations = append(summary.Recommendations,
				"Increase contact frequency with Pankaj")
		}
	}
	if stateCounts[types.StateEpisode] > 0 {
		summary.Recommendations = append(summary.Recommendations,
			"Review episode annotations with the treating physician")
	}

	return summary
}

// Daily fetches one calendar day of records and summarizes it
func (uc *InsightUseCase) Daily(ctx context.Context, date time.Time) (*model.DailySummary, error) {
	if date.IsZero() {
		return nil, goerr.New("summary date is required")
	}
	records, err := uc.repo.Interaction().ListByDate(ctx, date)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list interactions for day", goerr.V("date", dateKey(date)))
	}
	return uc.SummarizeDaily(date, records), nil
}

// Weekly fetches seven days of records starting at weekStart and
// summarizes them
func (uc *InsightUseCase) Weekly(ctx context.Context, weekStart time.Time) (*model.WeeklySummary, error) {
	if weekStart.IsZero() {
		return nil, goerr.New("week start date is required")
	}
	from := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
	records, err := uc.repo.Interaction().ListRange(ctx, from, from.AddDate(0, 0, 7))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list interactions for week", goerr.V("week_start", dateKey(from)))
	}
	summary := uc.SummarizeWeekly(records)
	summary.WeekStart = from
	return summary, nil
}
