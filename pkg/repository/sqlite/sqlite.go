package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS interactions (
	id            TEXT PRIMARY KEY,
	ts            INTEGER NOT NULL,
	state         TEXT NOT NULL,
	triggers      TEXT NOT NULL,
	source        TEXT NOT NULL,
	utterance     TEXT NOT NULL,
	response      TEXT NOT NULL,
	clinical_note TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interactions_ts ON interactions (ts);
`

// Client is the sqlite repository backend for a persisted interaction log
// on a caregiver device.
type Client struct {
	db          *sql.DB
	interaction *interactionRepository
}

var _ interfaces.Repository = &Client{}

// New opens (or creates) the sqlite database at path
func New(ctx context.Context, path string) (*Client, error) {
	if path == "" {
		return nil, goerr.New("sqlite database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to connect to sqlite database", goerr.V("path", path))
	}

	return &Client{
		db:          db,
		interaction: &interactionRepository{db: db},
	}, nil
}

// Migrate creates the schema if it does not exist
func (c *Client) Migrate(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return goerr.Wrap(err, "failed to migrate sqlite schema")
	}
	return nil
}

func (c *Client) Interaction() interfaces.InteractionRepository {
	return c.interaction
}

func (c *Client) Close() error {
	if err := c.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close sqlite database")
	}
	return nil
}
