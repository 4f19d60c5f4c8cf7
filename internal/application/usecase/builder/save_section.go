package builder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type SaveSectionUseCase struct {
	sectionRepo section.Repository
	events      service.Publisher
	logger      logger.Logger
}

func NewSaveSectionUseCase(repo section.Repository, events service.Publisher, log logger.Logger) *SaveSectionUseCase {
	return &SaveSectionUseCase{sectionRepo: repo, events: events, logger: log}
}

// SaveSectionInput is the explicit-save payload. Store-managed fields (id is
// the lookup key, created_at and section_type are immutable) are not part of
// the patch. A failed save is reported to the caller, whose edit buffer keeps
// the attempted values; nothing here rolls a client back.
type SaveSectionInput struct {
	SectionID    uuid.UUID
	Title        *string
	Content      *string
	ImageURL     *string
	Images       []string
	DisplayOrder int
	Parent       string
	Settings     section.Settings
}

func (uc *SaveSectionUseCase) Execute(ctx context.Context, input SaveSectionInput) (*section.Section, error) {
	s, err := uc.sectionRepo.FindByID(ctx, input.SectionID)
	if err != nil {
		return nil, err
	}

	s.Title = input.Title
	s.Content = input.Content
	s.ImageURL = input.ImageURL
	if input.Images != nil {
		s.Images = input.Images
	}
	s.DisplayOrder = input.DisplayOrder
	if input.Parent != "" {
		s.Parent = input.Parent
	}
	s.Settings = input.Settings
	s.UpdatedAt = time.Now().UTC()

	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("section validation failed", err)
	}

	if err := uc.sectionRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	publishSectionEvent(uc.events, uc.logger, event.ContentEventUpdated, s.ID.String(), s.Parent)
	return s, nil
}
