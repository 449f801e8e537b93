package cli

import (
	"context"

	"github.com/carewell-lab/saheli/pkg/cli/config"
	"github.com/carewell-lab/saheli/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var careCfg config.CareConfig

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the care configuration file",
		Flags:   careCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			profile, schedule, err := careCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "care configuration validation failed")
			}

			logger.Info("Care configuration validation passed",
				"patient", profile.FirstName(),
				"schedule_entries", len(schedule),
			)
			for _, entry := range schedule {
				logger.Info("Schedule entry validated",
					"time", entry.TimeOfDay,
					"purpose", entry.Purpose.String(),
				)
			}
			return nil
		},
	}
}
