package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(repo project.Repository, events service.Publisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: repo, events: events, logger: log}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, projectID uuid.UUID) error {
	p, err := uc.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventDeleted,
			Resource:   event.ResourceProject,
			ResourceID: projectID.String(),
			Parent:     p.Slug,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish project deleted event", err, zap.String("project_id", projectID.String()))
		}
	}()

	return nil
}
