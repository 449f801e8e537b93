package interfaces

import (
	"context"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
)

// InteractionRepository defines the interface for interaction log access
type InteractionRepository interface {
	// Create appends a new interaction record with auto-generated ID.
	// The stored record is never mutated afterward.
	Create(ctx context.Context, record *model.InteractionRecord) (*model.InteractionRecord, error)

	// Get retrieves an interaction record by ID
	Get(ctx context.Context, id model.InteractionID) (*model.InteractionRecord, error)

	// ListByDate retrieves all records whose timestamp falls on the same
	// calendar day as date, ordered by timestamp
	ListByDate(ctx context.Context, date time.Time) ([]*model.InteractionRecord, error)

	// ListRange retrieves all records with from <= timestamp < to, ordered
	// by timestamp
	ListRange(ctx context.Context, from, to time.Time) ([]*model.InteractionRecord, error)

	// CountTriggerOnDate counts records on the given calendar day that
	// carry the given trigger
	CountTriggerOnDate(ctx context.Context, trigger types.EmotionalTrigger, date time.Time) (int, error)
}

// Repository aggregates all repository interfaces
type Repository interface {
	Interaction() InteractionRepository
	Close() error
}
