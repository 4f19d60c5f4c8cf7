package methodology

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/methodology"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type MethodologyUseCase struct {
	repo   methodology.Repository
	events service.Publisher
	logger logger.Logger
}

func NewMethodologyUseCase(r methodology.Repository, events service.Publisher, log logger.Logger) *MethodologyUseCase {
	return &MethodologyUseCase{repo: r, events: events, logger: log}
}

func (uc *MethodologyUseCase) List(ctx context.Context) ([]*methodology.Item, error) {
	return uc.repo.List(ctx)
}

type CreateItemInput struct {
	Number string
	Title  string
	Items  []string
}

func (uc *MethodologyUseCase) Create(ctx context.Context, in CreateItemInput) (*methodology.Item, error) {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &methodology.Item{
		ID:           uuid.New(),
		Number:       in.Number,
		Title:        in.Title,
		Items:        in.Items,
		DisplayOrder: len(existing),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("methodology item validation failed", err)
	}
	if err := uc.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	uc.publish(event.ContentEventCreated, item.ID.String())
	return item, nil
}

type SaveAllInput struct {
	ID     uuid.UUID
	Number string
	Title  string
	Items  []string
}

// SaveAll writes the editor's full item list row by row, display order taken
// from list position. Failed row indices are returned, successes stand.
func (uc *MethodologyUseCase) SaveAll(ctx context.Context, rows []SaveAllInput) ([]*methodology.Item, []int, error) {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[uuid.UUID]*methodology.Item, len(existing))
	for _, item := range existing {
		byID[item.ID] = item
	}

	now := time.Now().UTC()
	saved := make([]*methodology.Item, 0, len(rows))
	var failed []int
	for i, row := range rows {
		item, ok := byID[row.ID]
		if !ok {
			return nil, nil, apperror.NewInvalidInput("unknown methodology item id: "+row.ID.String(), nil)
		}
		item.Number = row.Number
		item.Title = row.Title
		item.Items = row.Items
		item.DisplayOrder = i
		item.UpdatedAt = now
		if err := item.Validate(); err != nil {
			return nil, nil, apperror.NewInvalidInput("methodology item validation failed", err)
		}
		if err := uc.repo.Update(ctx, item); err != nil {
			uc.logger.Error("Failed to save methodology row", err, zap.String("item_id", item.ID.String()), zap.Int("index", i))
			failed = append(failed, i)
		}
		saved = append(saved, item)
	}

	if len(failed) < len(rows) {
		uc.publish(event.ContentEventUpdated, "")
	}
	return saved, failed, nil
}

func (uc *MethodologyUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(event.ContentEventDeleted, id.String())
	return nil
}

func (uc *MethodologyUseCase) publish(eventType event.ContentEventType, resourceID string) {
	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Resource:   event.ResourceMethodology,
			ResourceID: resourceID,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish methodology event", err, zap.String("resource_id", resourceID))
		}
	}()
}
