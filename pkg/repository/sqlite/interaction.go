package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type interactionRepository struct {
	db *sql.DB
}

// dayBounds returns the [start, end) range of the calendar day containing
// date, in date's own location
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func encodeTriggers(triggers []types.EmotionalTrigger) (string, error) {
	if triggers == nil {
		triggers = []types.EmotionalTrigger{}
	}
	raw, err := json.Marshal(triggers)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode triggers")
	}
	return string(raw), nil
}

func decodeTriggers(raw string) ([]types.EmotionalTrigger, error) {
	var triggers []types.EmotionalTrigger
	if err := json.Unmarshal([]byte(raw), &triggers); err != nil {
		return nil, goerr.Wrap(err, "failed to decode triggers")
	}
	if len(triggers) == 0 {
		return nil, nil
	}
	return triggers, nil
}

func (r *interactionRepository) Create(ctx context.Context, record *model.InteractionRecord) (*model.InteractionRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid interaction record")
	}

	created := record.Clone()
	if created.ID == "" {
		created.ID = model.NewInteractionID()
	}
	created.Source = created.Source.Normalize()

	triggers, err := encodeTriggers(created.Triggers)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO interactions (id, ts, state, triggers, source, utterance, response, clinical_note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		created.ID.String(),
		created.Timestamp.UnixNano(),
		created.State.String(),
		triggers,
		created.Source.String(),
		created.Utterance,
		created.Response,
		created.ClinicalNote,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert interaction record", goerr.V("id", created.ID.String()))
	}
	return created, nil
}

func (r *interactionRepository) scanRecord(row interface {
	Scan(dest ...any) error
}) (*model.InteractionRecord, error) {
	var (
		id, state, triggers, source       string
		utterance, response, clinicalNote string
		ts                                int64
	)
	if err := row.Scan(&id, &ts, &state, &triggers, &source, &utterance, &response, &clinicalNote); err != nil {
		return nil, err
	}

	decoded, err := decodeTriggers(triggers)
	if err != nil {
		return nil, err
	}
	return &model.InteractionRecord{
		ID:           model.InteractionID(id),
		Timestamp:    time.Unix(0, ts),
		State:        types.CognitiveState(state),
		Triggers:     decoded,
		Source:       types.RecordSource(source),
		Utterance:    utterance,
		Response:     response,
		ClinicalNote: clinicalNote,
	}, nil
}

const selectColumns = `id, ts, state, triggers, source, utterance, response, clinical_note`

func (r *interactionRepository) Get(ctx context.Context, id model.InteractionID) (*model.InteractionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM interactions WHERE id = ?`, id.String())

	record, err := r.scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "interaction not found", goerr.V("id", id.String()))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get interaction record", goerr.V("id", id.String()))
	}
	return record, nil
}

func (r *interactionRepository) listRange(ctx context.Context, from, to time.Time) ([]*model.InteractionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM interactions WHERE ts >= ? AND ts < ? ORDER BY ts ASC`,
		from.UnixNano(), to.UnixNano())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query interaction records")
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []*model.InteractionRecord
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan interaction record")
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate interaction records")
	}
	return out, nil
}

func (r *interactionRepository) ListByDate(ctx context.Context, date time.Time) ([]*model.InteractionRecord, error) {
	start, end := dayBounds(date)
	return r.listRange(ctx, start, end)
}

func (r *interactionRepository) ListRange(ctx context.Context, from, to time.Time) ([]*model.InteractionRecord, error) {
	return r.listRange(ctx, from, to)
}

func (r *interactionRepository) CountTriggerOnDate(ctx context.Context, trigger types.EmotionalTrigger, date time.Time) (int, error) {
	records, err := r.ListByDate(ctx, date)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, record := range records {
		for _, t := range record.Triggers {
			if t == trigger {
				count++
				break
			}
		}
	}
	return count, nil
}
