package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(repo project.Repository, events service.Publisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: repo, events: events, logger: log}
}

type CreateProjectInput struct {
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
	ThumbnailURL    string
	Images          []string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Slug == "" {
		input.Slug = strings.ToLower(strings.ReplaceAll(input.Title, " ", "-"))
	}
	if input.Images == nil {
		input.Images = []string{}
	}

	existing, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	order := 0
	for _, p := range existing {
		if p.DisplayOrder >= order {
			order = p.DisplayOrder + 1
		}
	}

	now := time.Now().UTC()
	newProject := &project.Project{
		ID:              uuid.New(),
		Slug:            input.Slug,
		Category:        input.Category,
		Number:          input.Number,
		Title:           input.Title,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		StatLabel1:      input.StatLabel1,
		StatValue1:      input.StatValue1,
		StatLabel2:      input.StatLabel2,
		StatValue2:      input.StatValue2,
		BgColor:         input.BgColor,
		DisplayOrder:    order,
		ThumbnailURL:    input.ThumbnailURL,
		Images:          input.Images,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventCreated,
			Resource:   event.ResourceProject,
			ResourceID: newProject.ID.String(),
			Parent:     newProject.Slug,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish project created event", err, zap.String("project_id", newProject.ID.String()))
		}
	}()

	return &CreateProjectOutput{Project: newProject}, nil
}
