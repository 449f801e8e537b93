package config

import (
	"context"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/repository/memory"
	"github.com/carewell-lab/saheli/pkg/repository/sqlite"
	"github.com/carewell-lab/saheli/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	sqlitePath string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (sqlite or memory)",
			Value:       "memory",
			Sources:     cli.EnvVars("SAHELI_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "Path to the sqlite database file (required when using sqlite backend)",
			Sources:     cli.EnvVars("SAHELI_SQLITE_PATH"),
			Destination: &r.sqlitePath,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// SQLitePath returns the sqlite database path
func (r *Repository) SQLitePath() string {
	return r.sqlitePath
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "sqlite":
		if r.sqlitePath == "" {
			return nil, goerr.New("sqlite-path is required when using sqlite backend")
		}
		repo, err := sqlite.New(ctx, r.sqlitePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		if err := repo.Migrate(ctx); err != nil {
			return nil, goerr.Wrap(err, "failed to migrate sqlite schema")
		}
		logging.Default().Info("Using sqlite repository", "path", r.sqlitePath)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
