package builder

import (
	"context"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type CreateSectionUseCase struct {
	sectionRepo section.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewCreateSectionUseCase(repo section.Repository, events service.Publisher, log logger.Logger) *CreateSectionUseCase {
	return &CreateSectionUseCase{sectionRepo: repo, events: events, logger: log}
}

type CreateSectionInput struct {
	Type   section.Type
	Parent string
}

// Execute persists an empty section of the requested type at the end of the
// page. A store failure leaves nothing behind: the section only exists once
// the insert succeeded.
func (uc *CreateSectionUseCase) Execute(ctx context.Context, input CreateSectionInput) (*section.Section, error) {
	existing, err := uc.sectionRepo.ListByParent(ctx, input.Parent)
	if err != nil {
		return nil, err
	}

	s := section.New(input.Type, input.Parent, section.NextOrder(existing))
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("section validation failed", err)
	}

	if err := uc.sectionRepo.Save(ctx, s); err != nil {
		return nil, err
	}

	publishSectionEvent(uc.events, uc.logger, event.ContentEventCreated, s.ID.String(), s.Parent)
	return s, nil
}
