package config

import (
	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/service/slack"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for the family alert channel
type Slack struct {
	webhookURL string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for family episode alerts",
			Sources:     cli.EnvVars("SAHELI_SLACK_WEBHOOK_URL"),
			Destination: &s.webhookURL,
		},
	}
}

// IsConfigured reports whether a webhook URL was provided
func (s *Slack) IsConfigured() bool {
	return s.webhookURL != ""
}

// Configure returns the family notifier, or nil when not configured
func (s *Slack) Configure() (interfaces.FamilyNotifier, error) {
	if s.webhookURL == "" {
		return nil, nil
	}
	notifier, err := slack.New(s.webhookURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Slack notifier")
	}
	return notifier, nil
}
