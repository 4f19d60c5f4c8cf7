package builder

import (
	"context"

	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type ReorderSectionsUseCase struct {
	sectionRepo section.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewReorderSectionsUseCase(repo section.Repository, events service.Publisher, log logger.Logger) *ReorderSectionsUseCase {
	return &ReorderSectionsUseCase{sectionRepo: repo, events: events, logger: log}
}

type ReorderSectionsInput struct {
	Parent    string
	Index     int
	Direction int // -1 moves up, +1 moves down
}

// ReorderSectionsOutput reports the list after the move together with the
// zero-based positions whose display_order did not persist. The loop does not
// stop at the first failure, so a partial save is visible rather than silent.
type ReorderSectionsOutput struct {
	Sections      []*section.Section
	FailedIndices []int
}

func (uc *ReorderSectionsUseCase) Execute(ctx context.Context, input ReorderSectionsInput) (*ReorderSectionsOutput, error) {
	list, err := uc.sectionRepo.ListByParent(ctx, input.Parent)
	if err != nil {
		return nil, err
	}

	if !section.Move(list, input.Index, input.Direction) {
		// Out-of-range move is a no-op, not an error.
		return &ReorderSectionsOutput{Sections: list}, nil
	}

	failed := persistOrder(ctx, uc.sectionRepo, uc.logger, list)
	if len(failed) < len(list) {
		publishSectionEvent(uc.events, uc.logger, event.ContentEventUpdated, "", input.Parent)
	}

	return &ReorderSectionsOutput{Sections: list, FailedIndices: failed}, nil
}

// persistOrder writes each section's display_order one row at a time, in list
// order, and returns the indices that failed.
func persistOrder(ctx context.Context, repo section.Repository, log logger.Logger, list []*section.Section) []int {
	failed := []int{}
	for i, s := range list {
		if err := repo.UpdateOrder(ctx, s.ID, s.DisplayOrder); err != nil {
			log.Error("Failed to persist section order", err,
				zap.String("section_id", s.ID.String()), zap.Int("index", i))
			failed = append(failed, i)
		}
	}
	return failed
}
