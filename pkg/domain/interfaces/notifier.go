package interfaces

import (
	"context"

	"github.com/carewell-lab/saheli/pkg/domain/model"
)

// FamilyNotifier delivers alerts to the family channel. The core only
// alerts on episode records, which enter the log exclusively through
// caregiver or clinician annotation.
type FamilyNotifier interface {
	NotifyEpisode(ctx context.Context, record *model.InteractionRecord) error
}
