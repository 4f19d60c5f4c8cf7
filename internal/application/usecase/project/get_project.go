package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(repo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: repo}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID uuid.UUID) (*project.Project, error) {
	return uc.projectRepo.FindByID(ctx, projectID)
}

// GetProjectBySlugUseCase backs the public /project/:slug route. A missing
// slug surfaces as a not-found the client renders as its own view.
type GetProjectBySlugUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectBySlugUseCase(repo project.Repository) *GetProjectBySlugUseCase {
	return &GetProjectBySlugUseCase{projectRepo: repo}
}

func (uc *GetProjectBySlugUseCase) Execute(ctx context.Context, slug string) (*project.Project, error) {
	return uc.projectRepo.FindBySlug(ctx, slug)
}
