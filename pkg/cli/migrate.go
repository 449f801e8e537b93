package cli

import (
	"context"

	"github.com/carewell-lab/saheli/pkg/repository/sqlite"
	"github.com/carewell-lab/saheli/pkg/utils/logging"
	"github.com/carewell-lab/saheli/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var sqlitePath string

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Create or update the sqlite interaction log schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "sqlite-path",
				Usage:       "Path to the sqlite database file (required)",
				Required:    true,
				Sources:     cli.EnvVars("SAHELI_SQLITE_PATH"),
				Destination: &sqlitePath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()
			logger.Info("Migrate configuration", "path", sqlitePath)

			client, err := sqlite.New(ctx, sqlitePath)
			if err != nil {
				return goerr.Wrap(err, "failed to open sqlite database")
			}
			defer safe.Close(ctx, client)

			if err := client.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "migration failed")
			}

			logger.Info("Migration completed", "path", sqlitePath)
			return nil
		},
	}
}
