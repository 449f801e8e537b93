package slack

import (
	"context"
	"fmt"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier delivers episode alerts to the family Slack channel via an
// incoming webhook. Alert text carries the timestamp and clinical note
// only; patient speech never leaves the device.
type Notifier struct {
	webhookURL string
}

var _ interfaces.FamilyNotifier = &Notifier{}

// New creates a family notifier for the given incoming webhook URL
func New(webhookURL string) (*Notifier, error) {
	if webhookURL == "" {
		return nil, goerr.New("Slack webhook URL is required")
	}
	return &Notifier{webhookURL: webhookURL}, nil
}

// NotifyEpisode posts an episode alert to the family channel
func (n *Notifier) NotifyEpisode(ctx context.Context, record *model.InteractionRecord) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf(":rotating_light: Episode confirmed at %s. %s",
			record.Timestamp.Format("15:04 Jan 2"), record.ClinicalNote),
	}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post episode alert to Slack",
			goerr.V("record_id", record.ID.String()))
	}
	return nil
}
