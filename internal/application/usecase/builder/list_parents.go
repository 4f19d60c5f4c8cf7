package builder

import (
	"context"
	"sort"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
)

// ListParentsUseCase derives the page selector's option set: home, every
// project slug, and any parent a section already uses (covers sections whose
// project was deleted). Read-only aggregate, never stored.
type ListParentsUseCase struct {
	sectionRepo section.Repository
	projectRepo project.Repository
}

func NewListParentsUseCase(sRepo section.Repository, pRepo project.Repository) *ListParentsUseCase {
	return &ListParentsUseCase{sectionRepo: sRepo, projectRepo: pRepo}
}

func (uc *ListParentsUseCase) Execute(ctx context.Context) ([]string, error) {
	slugs, err := uc.projectRepo.ListSlugs(ctx)
	if err != nil {
		return nil, err
	}
	used, err := uc.sectionRepo.ListParents(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{section.ParentHome: true}
	for _, s := range slugs {
		seen[s] = true
	}
	for _, p := range used {
		seen[p] = true
	}

	parents := make([]string, 0, len(seen))
	for p := range seen {
		parents = append(parents, p)
	}
	sort.Strings(parents)
	return parents, nil
}
