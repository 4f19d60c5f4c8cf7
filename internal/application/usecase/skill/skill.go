package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/skill"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type SkillUseCase struct {
	repo   skill.Repository
	events service.Publisher
	logger logger.Logger
}

func NewSkillUseCase(r skill.Repository, events service.Publisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, events: events, logger: log}
}

func (uc *SkillUseCase) List(ctx context.Context) ([]*skill.Skill, error) {
	return uc.repo.List(ctx)
}

func (uc *SkillUseCase) Create(ctx context.Context, name string) (*skill.Skill, error) {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &skill.Skill{
		ID:           uuid.New(),
		Name:         name,
		DisplayOrder: len(existing),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	uc.publish(event.ContentEventCreated, s.ID.String())
	return s, nil
}

type SaveAllInput struct {
	ID   uuid.UUID
	Name string
}

// SaveAll replaces the full skill list in one call, the way the admin editor
// submits it: edited rows in their final order. Each row is written
// independently; indices of rows that failed are returned alongside.
func (uc *SkillUseCase) SaveAll(ctx context.Context, rows []SaveAllInput) ([]*skill.Skill, []int, error) {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[uuid.UUID]*skill.Skill, len(existing))
	for _, s := range existing {
		byID[s.ID] = s
	}

	now := time.Now().UTC()
	saved := make([]*skill.Skill, 0, len(rows))
	var failed []int
	for i, row := range rows {
		s, ok := byID[row.ID]
		if !ok {
			return nil, nil, apperror.NewInvalidInput("unknown skill id: "+row.ID.String(), nil)
		}
		s.Name = row.Name
		s.DisplayOrder = i
		s.UpdatedAt = now
		if err := s.Validate(); err != nil {
			return nil, nil, apperror.NewInvalidInput("skill validation failed", err)
		}
		if err := uc.repo.Update(ctx, s); err != nil {
			uc.logger.Error("Failed to save skill row", err, zap.String("skill_id", s.ID.String()), zap.Int("index", i))
			failed = append(failed, i)
		}
		saved = append(saved, s)
	}

	if len(failed) < len(rows) {
		uc.publish(event.ContentEventUpdated, "")
	}
	return saved, failed, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(event.ContentEventDeleted, id.String())
	return nil
}

func (uc *SkillUseCase) publish(eventType event.ContentEventType, resourceID string) {
	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Resource:   event.ResourceSkill,
			ResourceID: resourceID,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish skill event", err, zap.String("resource_id", resourceID))
		}
	}()
}
