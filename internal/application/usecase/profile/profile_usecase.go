package profile

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/profile"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, events service.Publisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: repo, events: events, logger: log}
}

// Get returns the singleton profile. Before the first save it returns an
// empty profile so the public site renders defaults rather than an error.
func (uc *ProfileUseCase) Get(ctx context.Context) (*profile.Profile, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return &profile.Profile{}, nil
		}
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) Update(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventUpdated,
			Resource:   event.ResourceProfile,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish profile change event", err, zap.String("resource", event.ResourceProfile))
		}
	}()

	return p, nil
}
