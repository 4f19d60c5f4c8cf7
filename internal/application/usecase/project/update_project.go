package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(repo project.Repository, events service.Publisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: repo, events: events, logger: log}
}

type UpdateProjectInput struct {
	ProjectID       uuid.UUID
	Slug            string
	Category        string
	Number          string
	Title           string
	Description     string
	LongDescription string
	StatLabel1      string
	StatValue1      string
	StatLabel2      string
	StatValue2      string
	BgColor         string
	DisplayOrder    int
	ThumbnailURL    string
	Images          []string
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Slug = input.Slug
	p.Category = input.Category
	p.Number = input.Number
	p.Title = input.Title
	p.Description = input.Description
	p.LongDescription = input.LongDescription
	p.StatLabel1 = input.StatLabel1
	p.StatValue1 = input.StatValue1
	p.StatLabel2 = input.StatLabel2
	p.StatValue2 = input.StatValue2
	p.BgColor = input.BgColor
	p.DisplayOrder = input.DisplayOrder
	p.ThumbnailURL = input.ThumbnailURL
	if input.Images != nil {
		p.Images = input.Images
	}
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventUpdated,
			Resource:   event.ResourceProject,
			ResourceID: p.ID.String(),
			Parent:     p.Slug,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish project updated event", err, zap.String("project_id", p.ID.String()))
		}
	}()

	return &UpdateProjectOutput{Project: p}, nil
}
