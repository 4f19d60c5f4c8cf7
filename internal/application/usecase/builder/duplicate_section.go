package builder

import (
	"context"

	"github.com/google/uuid"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type DuplicateSectionUseCase struct {
	sectionRepo section.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewDuplicateSectionUseCase(repo section.Repository, events service.Publisher, log logger.Logger) *DuplicateSectionUseCase {
	return &DuplicateSectionUseCase{sectionRepo: repo, events: events, logger: log}
}

// Execute copies a section to the end of its own page: every content field
// and setting survives, identity and timestamps are fresh, and the copy's
// display order is one past the page's current maximum.
func (uc *DuplicateSectionUseCase) Execute(ctx context.Context, sectionID uuid.UUID) (*section.Section, error) {
	original, err := uc.sectionRepo.FindByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	siblings, err := uc.sectionRepo.ListByParent(ctx, original.Parent)
	if err != nil {
		return nil, err
	}

	dup := original.Clone()
	dup.DisplayOrder = section.NextOrder(siblings)

	if err := uc.sectionRepo.Save(ctx, dup); err != nil {
		return nil, err
	}

	publishSectionEvent(uc.events, uc.logger, event.ContentEventCreated, dup.ID.String(), dup.Parent)
	return dup, nil
}
