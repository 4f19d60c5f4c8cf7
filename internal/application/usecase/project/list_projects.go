package project

import (
	"context"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) ([]*project.Project, error) {
	return uc.projectRepo.List(ctx)
}
