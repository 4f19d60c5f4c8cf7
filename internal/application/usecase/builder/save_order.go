package builder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// SaveOrderUseCase persists the order of a client-held list: the admin panel
// reorders in memory and pushes the resulting ID sequence in one call. Every
// section gets display_order = its position, written one row at a time.
type SaveOrderUseCase struct {
	sectionRepo section.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewSaveOrderUseCase(repo section.Repository, events service.Publisher, log logger.Logger) *SaveOrderUseCase {
	return &SaveOrderUseCase{sectionRepo: repo, events: events, logger: log}
}

type SaveOrderInput struct {
	Parent     string
	OrderedIDs []uuid.UUID
}

type SaveOrderOutput struct {
	Sections      []*section.Section
	FailedIndices []int
}

func (uc *SaveOrderUseCase) Execute(ctx context.Context, input SaveOrderInput) (*SaveOrderOutput, error) {
	current, err := uc.sectionRepo.ListByParent(ctx, input.Parent)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*section.Section, len(current))
	for _, s := range current {
		byID[s.ID] = s
	}

	if len(input.OrderedIDs) != len(current) {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("order list has %d entries, page %q has %d sections", len(input.OrderedIDs), input.Parent, len(current)), nil)
	}

	ordered := make([]*section.Section, 0, len(input.OrderedIDs))
	for _, id := range input.OrderedIDs {
		s, ok := byID[id]
		if !ok {
			return nil, apperror.NewInvalidInput(
				fmt.Sprintf("section %s does not belong to page %q", id, input.Parent), nil)
		}
		ordered = append(ordered, s)
		delete(byID, id)
	}

	section.Renumber(ordered)
	failed := persistOrder(ctx, uc.sectionRepo, uc.logger, ordered)
	if len(failed) < len(ordered) {
		publishSectionEvent(uc.events, uc.logger, event.ContentEventUpdated, "", input.Parent)
	}

	return &SaveOrderOutput{Sections: ordered, FailedIndices: failed}, nil
}
