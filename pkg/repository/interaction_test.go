package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/carewell-lab/saheli/pkg/repository/memory"
	"github.com/carewell-lab/saheli/pkg/repository/sqlite"
	"github.com/m-mizutani/gt"
)

func backends(t *testing.T) map[string]interfaces.Repository {
	t.Helper()
	ctx := context.Background()

	client, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "saheli.db"))
	gt.NoError(t, err).Required()
	gt.NoError(t, client.Migrate(ctx)).Required()
	t.Cleanup(func() {
		_ = client.Close()
	})

	return map[string]interfaces.Repository{
		"memory": memory.New(),
		"sqlite": client,
	}
}

func testRecord(ts time.Time, state types.CognitiveState, triggers ...types.EmotionalTrigger) *model.InteractionRecord {
	return &model.InteractionRecord{
		Timestamp:    ts,
		State:        state,
		Triggers:     triggers,
		Utterance:    "test utterance",
		Response:     "test response",
		ClinicalNote: "test note",
	}
}

func TestInteractionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Interaction().Create(ctx, testRecord(ts, types.StateAgitated, types.TriggerMoneyAnxiety))
			gt.NoError(t, err).Required()
			gt.B(t, created.ID != "").True()

			got, err := repo.Interaction().Get(ctx, created.ID)
			gt.NoError(t, err).Required()
			gt.Value(t, got.State).Equal(types.StateAgitated)
			gt.Array(t, got.Triggers).Equal([]types.EmotionalTrigger{types.TriggerMoneyAnxiety})
			gt.Value(t, got.Utterance).Equal("test utterance")
			gt.Value(t, got.Source).Equal(types.SourceConversation)
			gt.B(t, got.Timestamp.Equal(ts)).True()
		})
	}
}

func TestInteractionRepository_GetNotFound(t *testing.T) {
	ctx := context.Background()

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Interaction().Get(ctx, model.NewInteractionID())
			gt.Error(t, err)
			gt.B(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, sqlite.ErrNotFound)).True()
		})
	}
}

func TestInteractionRepository_InvalidRecordRejected(t *testing.T) {
	ctx := context.Background()

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Interaction().Create(ctx, &model.InteractionRecord{
				Timestamp: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
				State:     types.CognitiveState("bogus"),
			})
			gt.Error(t, err)
		})
	}
}

func TestInteractionRepository_ListByDate(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// inserted out of order to exercise sorting
			for _, hour := range []int{18, 8, 12} {
				_, err := repo.Interaction().Create(ctx,
					testRecord(day1.Add(time.Duration(hour)*time.Hour), types.StateStable))
				gt.NoError(t, err).Required()
			}
			_, err := repo.Interaction().Create(ctx,
				testRecord(day1.AddDate(0, 0, 1).Add(9*time.Hour), types.StateEpisode))
			gt.NoError(t, err).Required()

			records, err := repo.Interaction().ListByDate(ctx, day1)
			gt.NoError(t, err).Required()
			gt.Array(t, records).Length(3)
			for i := 1; i < len(records); i++ {
				gt.B(t, !records[i].Timestamp.Before(records[i-1].Timestamp)).True()
			}
		})
	}
}

// Day membership is decided by the absolute instant against the query
// day's bounds, not by the calendar fields of the record's own location.
func TestInteractionRepository_ListByDate_ForeignZone(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// 03:30 IST on Feb 2 is 22:00 UTC on Feb 1
	ist := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2026, 2, 2, 3, 30, 0, 0, ist)

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Interaction().Create(ctx, testRecord(ts, types.StateStable, types.TriggerSisterUrgency))
			gt.NoError(t, err).Required()

			onDay, err := repo.Interaction().ListByDate(ctx, day)
			gt.NoError(t, err).Required()
			gt.Array(t, onDay).Length(1)

			nextDay, err := repo.Interaction().ListByDate(ctx, day.AddDate(0, 0, 1))
			gt.NoError(t, err).Required()
			gt.Array(t, nextDay).Length(0)

			count, err := repo.Interaction().CountTriggerOnDate(ctx, types.TriggerSisterUrgency, day)
			gt.NoError(t, err).Required()
			gt.Number(t, count).Equal(1)
		})
	}
}

func TestInteractionRepository_ListRange(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for d := 0; d < 10; d++ {
				_, err := repo.Interaction().Create(ctx,
					testRecord(start.AddDate(0, 0, d).Add(10*time.Hour), types.StateStable))
				gt.NoError(t, err).Required()
			}

			records, err := repo.Interaction().ListRange(ctx, start, start.AddDate(0, 0, 7))
			gt.NoError(t, err).Required()
			gt.Array(t, records).Length(7)
		})
	}
}

func TestInteractionRepository_CountTriggerOnDate(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, triggers := range [][]types.EmotionalTrigger{
				{types.TriggerSisterUrgency},
				{types.TriggerSisterUrgency, types.TriggerMoneyAnxiety},
				{types.TriggerMoneyAnxiety},
				nil,
			} {
				_, err := repo.Interaction().Create(ctx,
					testRecord(day.Add(9*time.Hour), types.StateStable, triggers...))
				gt.NoError(t, err).Required()
			}

			count, err := repo.Interaction().CountTriggerOnDate(ctx, types.TriggerSisterUrgency, day)
			gt.NoError(t, err).Required()
			gt.Number(t, count).Equal(2)

			none, err := repo.Interaction().CountTriggerOnDate(ctx, types.TriggerIsolationPanic, day)
			gt.NoError(t, err).Required()
			gt.Number(t, none).Equal(0)
		})
	}
}

func TestInteractionRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := memory.New()

	var wg sync.WaitGroup
	errCh := make(chan error, 40)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(hour int) {
			defer wg.Done()
			_, err := repo.Interaction().Create(ctx,
				testRecord(day.Add(time.Duration(hour)*time.Minute), types.StateStable, types.TriggerHomeLonging))
			errCh <- err
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Interaction().ListByDate(ctx, day)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		gt.NoError(t, err)
	}

	records, err := repo.Interaction().ListByDate(ctx, day)
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(20)
}

// Records are immutable once emitted: mutating what Create or Get returned
// must not affect the stored copy.
func TestInteractionRepository_Immutability(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	repo := memory.New()
	created, err := repo.Interaction().Create(ctx, testRecord(ts, types.StateStable, types.TriggerHomeLonging))
	gt.NoError(t, err).Required()

	created.State = types.StateEpisode
	created.Triggers[0] = types.TriggerMoneyAnxiety

	stored, err := repo.Interaction().Get(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, stored.State).Equal(types.StateStable)
	gt.Array(t, stored.Triggers).Equal([]types.EmotionalTrigger{types.TriggerHomeLonging})
}
