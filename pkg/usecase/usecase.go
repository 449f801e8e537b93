package usecase

import (
	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/domain/model"
)

type UseCases struct {
	repo     interfaces.Repository
	profile  *model.Profile
	schedule []model.ScheduleEntry
	notifier interfaces.FamilyNotifier

	Companion *CompanionUseCase
	Schedule  *ScheduleUseCase
	Insight   *InsightUseCase
}

type Option func(*UseCases)

// WithProfile overrides the default patient reference profile
func WithProfile(profile *model.Profile) Option {
	return func(uc *UseCases) {
		uc.profile = profile
	}
}

// WithSchedule overrides the default daily care schedule
func WithSchedule(entries []model.ScheduleEntry) Option {
	return func(uc *UseCases) {
		uc.schedule = entries
	}
}

// WithNotifier sets the family alert channel
func WithNotifier(notifier interfaces.FamilyNotifier) Option {
	return func(uc *UseCases) {
		uc.notifier = notifier
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		profile:  model.DefaultProfile(),
		schedule: model.DefaultSchedule(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Companion = NewCompanionUseCase(repo, uc.profile, uc.notifier)
	uc.Schedule = NewScheduleUseCase(uc.schedule)
	uc.Insight = NewInsightUseCase(repo)

	return uc
}
