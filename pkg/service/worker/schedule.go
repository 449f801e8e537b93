package worker

import (
	"context"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/carewell-lab/saheli/pkg/utils/logging"
)

// ScheduleWorker drives the proactive side of the companion: once per
// minute it consults the care schedule and announces any prompt that
// matches the current minute.
//
// Architecture assumptions:
// - Single device instance (no distributed locking)
// - Announce delivery is fire-and-forget; a missed minute is not replayed
type ScheduleWorker struct {
	schedule *usecase.ScheduleUseCase
	announce func(ctx context.Context, prompt *model.ScheduledPrompt, at time.Time)
	now      func() time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewScheduleWorker creates a worker that calls announce for each
// scheduled prompt as its minute arrives
func NewScheduleWorker(schedule *usecase.ScheduleUseCase, announce func(ctx context.Context, prompt *model.ScheduledPrompt, at time.Time)) *ScheduleWorker {
	return &ScheduleWorker{
		schedule: schedule,
		announce: announce,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the schedule loop in a background goroutine
func (w *ScheduleWorker) Start(ctx context.Context) {
	logging.From(ctx).Info("schedule worker starting",
		"entries", len(w.schedule.Entries()))
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for completion
func (w *ScheduleWorker) Stop() {
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("schedule worker stopped")
}

func (w *ScheduleWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	lastMinute := ""
	for {
		select {
		case <-ticker.C:
			w.tick(ctx, &lastMinute)

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.From(ctx).Info("schedule worker context cancelled")
			return
		}
	}
}

// tick fires at most once per wall-clock minute even if the ticker drifts
func (w *ScheduleWorker) tick(ctx context.Context, lastMinute *string) {
	now := w.now()
	minute := now.Format("15:04")
	if minute == *lastMinute {
		return
	}
	*lastMinute = minute

	prompt := w.schedule.Lookup(now)
	if prompt == nil {
		return
	}

	logging.From(ctx).Info("scheduled prompt",
		"purpose", prompt.Purpose.String(),
		"time", minute)
	if w.announce != nil {
		w.announce(ctx, prompt, now)
	}
}
