package builder

import (
	"context"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
)

// ListSectionsUseCase loads the ordered section list of one page. This is the
// editor's Load: the response replaces whatever the client held before.
type ListSectionsUseCase struct {
	sectionRepo section.Repository
}

func NewListSectionsUseCase(repo section.Repository) *ListSectionsUseCase {
	return &ListSectionsUseCase{sectionRepo: repo}
}

func (uc *ListSectionsUseCase) Execute(ctx context.Context, parent string) ([]*section.Section, error) {
	return uc.sectionRepo.ListByParent(ctx, parent)
}
