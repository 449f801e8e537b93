package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/carewell-lab/saheli/pkg/repository/memory"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func record(ts time.Time, state types.CognitiveState, triggers ...types.EmotionalTrigger) *model.InteractionRecord {
	return &model.InteractionRecord{
		Timestamp: ts,
		State:     state,
		Triggers:  triggers,
	}
}

func TestSummarizeDaily(t *testing.T) {
	uc := usecase.NewInsightUseCase(memory.New())
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty record sequence", func(t *testing.T) {
		summary := uc.SummarizeDaily(day, nil)
		gt.Number(t, summary.RecordCount).Equal(0)
		gt.Number(t, summary.EpisodeCount).Equal(0)
		gt.Value(t, summary.SundowningSeverity).Equal(types.SeverityNone)
		gt.Value(t, summary.OverallState).Equal(types.OverallStable)
		gt.Array(t, summary.DominantConcerns).Length(0)
	})

	t.Run("majority stable with one trigger", func(t *testing.T) {
		records := []*model.InteractionRecord{
			record(at(8, 15), types.StateStable),
			record(at(16, 0), types.StateSundowning, types.TriggerMoneyAnxiety),
			record(at(18, 0), types.StateStable),
		}
		summary := uc.SummarizeDaily(day, records)
		gt.Value(t, summary.OverallState).Equal(types.OverallStable)
		gt.Array(t, summary.DominantConcerns).Equal([]model.ConcernCount{
			{Trigger: types.TriggerMoneyAnxiety, Count: 1},
		})
		gt.Value(t, summary.SundowningSeverity).Equal(types.SeverityModerate)
	})

	t.Run("tie goes to elevated distress", func(t *testing.T) {
		records := []*model.InteractionRecord{
			record(at(8, 0), types.StateStable),
			record(at(17, 0), types.StateSundowning),
		}
		summary := uc.SummarizeDaily(day, records)
		gt.Value(t, summary.OverallState).Equal(types.OverallElevatedDistress)
	})

	t.Run("more than two sundowning records is severe", func(t *testing.T) {
		records := []*model.InteractionRecord{
			record(at(16, 0), types.StateSundowning),
			record(at(17, 0), types.StateSundowning),
			record(at(18, 0), types.StateSundowning),
		}
		summary := uc.SummarizeDaily(day, records)
		gt.Value(t, summary.SundowningSeverity).Equal(types.SeveritySevere)
		gt.Value(t, summary.OverallState).Equal(types.OverallElevatedDistress)
	})

	t.Run("episode count only from supplied records", func(t *testing.T) {
		records := []*model.InteractionRecord{
			record(at(9, 0), types.StateStable),
			record(at(10, 0), types.StateEpisode),
			record(at(11, 0), types.StateEpisode),
		}
		summary := uc.SummarizeDaily(day, records)
		gt.Number(t, summary.EpisodeCount).Equal(2)
	})

	t.Run("top three concerns with stable tie order", func(t *testing.T) {
		records := []*model.InteractionRecord{
			record(at(9, 0), types.StateStable, types.TriggerSisterUrgency),
			record(at(10, 0), types.StateStable, types.TriggerMoneyAnxiety),
			record(at(11, 0), types.StateStable, types.TriggerMoneyAnxiety),
			record(at(12, 0), types.StateStable, types.TriggerPankajSafety),
			record(at(13, 0), types.StateStable, types.TriggerHomeLonging),
		}
		summary := uc.SummarizeDaily(day, records)
		// money leads; sister, pankaj and home tie at 1, first-seen order
		// wins and only three survive
		gt.Array(t, summary.DominantConcerns).Equal([]model.ConcernCount{
			{Trigger: types.TriggerMoneyAnxiety, Count: 2},
			{Trigger: types.TriggerSisterUrgency, Count: 1},
			{Trigger: types.TriggerPankajSafety, Count: 1},
		})
	})
}

func TestSummarizeWeekly(t *testing.T) {
	uc := usecase.NewInsightUseCase(memory.New())

	day := func(d, hour int) time.Time {
		return time.Date(2026, 2, d, hour, 0, 0, 0, time.UTC)
	}

	t.Run("empty input", func(t *testing.T) {
		summary := uc.SummarizeWeekly(nil)
		gt.Number(t, summary.RecordCount).Equal(0)
		gt.Number(t, summary.DayCount).Equal(0)
		gt.Array(t, summary.Patterns).Length(0)
		gt.Array(t, summary.Recommendations).Length(0)
	})

	t.Run("patterns derive from counts", func(t *testing.T) {
		records := []*model.InteractionRecord{
			record(day(1, 16), types.StateSundowning, types.TriggerMoneyAnxiety),
			record(day(1, 18), types.StateSundowning),
			record(day(2, 17), types.StateSundowning, types.TriggerMoneyAnxiety),
			record(day(3, 10), types.StateStable, types.TriggerSisterUrgency),
			record(day(4, 17), types.StateSundowning),
			record(day(5, 11), types.StateEpisode),
		}
		summary := uc.SummarizeWeekly(records)

		gt.Number(t, summary.DayCount).Equal(5)
		gt.Number(t, summary.SundowningDays).Equal(3)
		gt.Number(t, summary.EpisodeDays).Equal(1)
		gt.Array(t, summary.DominantConcerns).Equal([]model.ConcernCount{
			{Trigger: types.TriggerMoneyAnxiety, Count: 2},
			{Trigger: types.TriggerSisterUrgency, Count: 1},
		})

		// every pattern statement carries its evidence counts
		gt.Number(t, len(summary.Patterns)).NotEqual(0)
		for _, pattern := range summary.Patterns {
			gt.Number(t, len(pattern.Evidence)).NotEqual(0)
		}
		gt.Number(t, len(summary.Recommendations)).NotEqual(0)
	})
}

func TestInsight_Daily(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for _, rec := range []*model.InteractionRecord{
		record(at(8, 15), types.StateStable),
		record(at(16, 0), types.StateSundowning, types.TriggerMoneyAnxiety),
		record(at(18, 0), types.StateStable),
	} {
		_, err := repo.Interaction().Create(ctx, rec)
		gt.NoError(t, err).Required()
	}
	// next day's record must not leak into the summary
	_, err := repo.Interaction().Create(ctx,
		record(time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC), types.StateEpisode))
	gt.NoError(t, err).Required()

	summary, err := uc.Insight.Daily(ctx, day)
	gt.NoError(t, err).Required()
	gt.Number(t, summary.RecordCount).Equal(3)
	gt.Number(t, summary.EpisodeCount).Equal(0)
	gt.Value(t, summary.OverallState).Equal(types.OverallStable)

	t.Run("zero date fails fast", func(t *testing.T) {
		_, err := uc.Insight.Daily(ctx, time.Time{})
		gt.Error(t, err)
	})
}
