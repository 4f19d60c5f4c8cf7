package page

import (
	"context"
	"encoding/json"

	"github.com/ngocmaitran/portfolio-cms/adapters/persistence"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// GetPageUseCase serves the public read path: the stored section list of one
// page rendered down to its displayable blocks. Responses are cached as raw
// JSON so a hit skips both the database and the render.
type GetPageUseCase struct {
	sectionRepo section.Repository
	cache       service.Cache
	logger      logger.Logger
}

func NewGetPageUseCase(repo section.Repository, cache service.Cache, log logger.Logger) *GetPageUseCase {
	return &GetPageUseCase{sectionRepo: repo, cache: cache, logger: log}
}

type PageResponse struct {
	Parent string          `json:"parent"`
	Blocks []section.Block `json:"blocks"`
}

// Execute returns the page as marshalled JSON, ready to write to the wire.
func (uc *GetPageUseCase) Execute(ctx context.Context, parent string) ([]byte, error) {
	if parent == "" {
		return nil, apperror.NewInvalidInput("page parent is required", nil)
	}

	key := persistence.PageKey(parent)
	if cached, _ := uc.cache.Get(ctx, key); cached != nil {
		return cached, nil
	}

	sections, err := uc.sectionRepo.ListByParent(ctx, parent)
	if err != nil {
		return nil, err
	}

	resp := PageResponse{Parent: parent, Blocks: section.RenderBlocks(sections)}
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, apperror.NewInternal("failed to encode page", err)
	}

	uc.cache.Set(ctx, key, body)
	return body, nil
}
