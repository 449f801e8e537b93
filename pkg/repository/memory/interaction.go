package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type interactionRepository struct {
	mu      sync.RWMutex
	records []*model.InteractionRecord
	byID    map[model.InteractionID]*model.InteractionRecord
}

func newInteractionRepository() *interactionRepository {
	return &interactionRepository{
		byID: make(map[model.InteractionID]*model.InteractionRecord),
	}
}

// dayBounds returns the [start, end) range of the calendar day containing
// date, in date's own location. Day membership is decided by absolute
// time against these bounds so that both backends bucket a record the
// same way whatever location its timestamp carries.
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func inRange(ts, from, to time.Time) bool {
	return !ts.Before(from) && ts.Before(to)
}

func (r *interactionRepository) Create(ctx context.Context, record *model.InteractionRecord) (*model.InteractionRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid interaction record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := record.Clone()
	if created.ID == "" {
		created.ID = model.NewInteractionID()
	}
	created.Source = created.Source.Normalize()

	r.records = append(r.records, created)
	r.byID[created.ID] = created
	return created.Clone(), nil
}

func (r *interactionRepository) Get(ctx context.Context, id model.InteractionID) (*model.InteractionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "interaction not found", goerr.V("id", id.String()))
	}
	return record.Clone(), nil
}

func (r *interactionRepository) ListByDate(ctx context.Context, date time.Time) ([]*model.InteractionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := dayBounds(date)
	var out []*model.InteractionRecord
	for _, record := range r.records {
		if inRange(record.Timestamp, start, end) {
			out = append(out, record.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *interactionRepository) ListRange(ctx context.Context, from, to time.Time) ([]*model.InteractionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.InteractionRecord
	for _, record := range r.records {
		if inRange(record.Timestamp, from, to) {
			out = append(out, record.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *interactionRepository) CountTriggerOnDate(ctx context.Context, trigger types.EmotionalTrigger, date time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := dayBounds(date)
	count := 0
	for _, record := range r.records {
		if !inRange(record.Timestamp, start, end) {
			continue
		}
		for _, t := range record.Triggers {
			if t == trigger {
				count++
				break
			}
		}
	}
	return count, nil
}
