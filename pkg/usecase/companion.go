package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/carewell-lab/saheli/pkg/utils/async"
	"github.com/carewell-lab/saheli/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// CompanionUseCase runs the conversational pipeline: classify the
// cognitive state, detect triggers, compose the spoken response, append
// the labeled record to the log, and apply the family alert policy.
type CompanionUseCase struct {
	repo     interfaces.Repository
	profile  *model.Profile
	notifier interfaces.FamilyNotifier
}

func NewCompanionUseCase(repo interfaces.Repository, profile *model.Profile, notifier interfaces.FamilyNotifier) *CompanionUseCase {
	return &CompanionUseCase{
		repo:     repo,
		profile:  profile,
		notifier: notifier,
	}
}

// Profile returns the injected reference profile
func (uc *CompanionUseCase) Profile() *model.Profile {
	return uc.profile
}

// Compose selects the scripted response for a classified state and the
// detected trigger matches
func (uc *CompanionUseCase) Compose(state types.CognitiveState, matches []model.TriggerMatch) *model.ComposedResponse {
	return ComposeResponse(uc.profile, state, matches)
}

// Respond handles one patient utterance: state classification and trigger
// detection run as independent passes over the same input, then the
// composed record is appended to the interaction log.
func (uc *CompanionUseCase) Respond(ctx context.Context, utterance string, at time.Time) (*model.InteractionRecord, error) {
	if at.IsZero() {
		return nil, goerr.New("interaction timestamp is required")
	}

	sisterMentions, err := uc.repo.Interaction().CountTriggerOnDate(ctx, types.TriggerSisterUrgency, at)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count same-day sister mentions")
	}

	state := ClassifyState(utterance, at)
	matches := DetectTriggers(utterance, at, sisterMentions)
	resp := uc.Compose(state, matches)

	record := &model.InteractionRecord{
		Timestamp:    at,
		State:        resp.State,
		Triggers:     resp.Triggers,
		Source:       types.SourceConversation,
		Utterance:    utterance,
		Response:     resp.Utterance,
		ClinicalNote: resp.ClinicalNote,
	}

	created, err := uc.repo.Interaction().Create(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append interaction record")
	}

	uc.alertIfEpisode(ctx, created)
	return created, nil
}

// RecordScheduledPrompt appends a delivered proactive prompt to the log
// with the scheduled source, so summaries can distinguish care-schedule
// contacts from conversational turns. Scheduled records are always stable
// and carry no patient utterance.
func (uc *CompanionUseCase) RecordScheduledPrompt(ctx context.Context, prompt *model.ScheduledPrompt, at time.Time) (*model.InteractionRecord, error) {
	if prompt == nil {
		return nil, goerr.New("scheduled prompt is required")
	}

	record := &model.InteractionRecord{
		Timestamp:    at,
		State:        types.StateStable,
		Source:       types.SourceScheduled,
		Response:     prompt.Utterance,
		ClinicalNote: fmt.Sprintf("Scheduled care prompt: %s", prompt.Purpose),
	}

	created, err := uc.repo.Interaction().Create(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append scheduled prompt record",
			goerr.V("purpose", prompt.Purpose.String()))
	}
	return created, nil
}

// Annotate ingests an externally confirmed record into the log. This is
// the only path that can carry the episode state: the classifier has no
// episode rule and no authority over clinician-confirmed events.
func (uc *CompanionUseCase) Annotate(ctx context.Context, at time.Time, state types.CognitiveState, triggers []types.EmotionalTrigger, note string) (*model.InteractionRecord, error) {
	record := &model.InteractionRecord{
		Timestamp:    at,
		State:        state,
		Triggers:     triggers,
		Source:       types.SourceAnnotation,
		ClinicalNote: note,
	}
	if err := record.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid annotated record")
	}

	created, err := uc.repo.Interaction().Create(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append annotated record")
	}

	uc.alertIfEpisode(ctx, created)
	return created, nil
}

// alertIfEpisode applies the family alert policy: alert iff the record
// state is episode. Delivery runs asynchronously so a slow or failing
// notification channel never blocks record ingestion.
func (uc *CompanionUseCase) alertIfEpisode(ctx context.Context, record *model.InteractionRecord) {
	if record.State != types.StateEpisode || uc.notifier == nil {
		return
	}

	alerted := record.Clone()
	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := uc.notifier.NotifyEpisode(ctx, alerted); err != nil {
			return goerr.Wrap(err, "failed to notify family of episode", goerr.V("record_id", alerted.ID.String()))
		}
		logging.From(ctx).Info("family notified of episode", "record_id", alerted.ID.String())
		return nil
	})
}
