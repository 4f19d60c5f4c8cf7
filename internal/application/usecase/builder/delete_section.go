package builder

import (
	"context"

	"github.com/google/uuid"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type DeleteSectionUseCase struct {
	sectionRepo section.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewDeleteSectionUseCase(repo section.Repository, events service.Publisher, log logger.Logger) *DeleteSectionUseCase {
	return &DeleteSectionUseCase{sectionRepo: repo, events: events, logger: log}
}

// Execute removes the section immediately and irreversibly. Surviving
// siblings keep their display orders; renumbering happens on the next
// reorder or order save.
func (uc *DeleteSectionUseCase) Execute(ctx context.Context, sectionID uuid.UUID) error {
	s, err := uc.sectionRepo.FindByID(ctx, sectionID)
	if err != nil {
		return err
	}

	if err := uc.sectionRepo.Delete(ctx, sectionID); err != nil {
		return err
	}

	publishSectionEvent(uc.events, uc.logger, event.ContentEventDeleted, s.ID.String(), s.Parent)
	return nil
}
