package page

import (
	"context"

	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/adapters/persistence"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// InvalidateCacheUseCase is the worker side of the cache: every content event
// drops the rendered responses the change could have touched. Section events
// carry their parent so only that page falls out; everything else clears all
// pages, since projects and profile feed the portfolio bundle too.
type InvalidateCacheUseCase struct {
	cache  service.Cache
	logger logger.Logger
}

func NewInvalidateCacheUseCase(cache service.Cache, log logger.Logger) *InvalidateCacheUseCase {
	return &InvalidateCacheUseCase{cache: cache, logger: log}
}

func (uc *InvalidateCacheUseCase) Execute(ctx context.Context, payload event.ContentEventPayload) error {
	if payload.Resource == event.ResourceSection && payload.Parent != "" {
		uc.logger.Info("Invalidating page cache",
			zap.String("parent", payload.Parent), zap.String("event_type", string(payload.EventType)))
		uc.cache.Invalidate(ctx, persistence.PageKey(payload.Parent), persistence.PortfolioBundleKey)
		return nil
	}

	uc.logger.Info("Invalidating all page caches",
		zap.String("resource", payload.Resource), zap.String("event_type", string(payload.EventType)))
	uc.cache.InvalidateAllPages(ctx)
	return nil
}
