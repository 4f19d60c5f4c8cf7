package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/internal/config"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/profile"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// RSSUseCase builds a feed of published projects so readers can follow new
// case studies.
type RSSUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	site        config.SiteConfig
	logger      logger.Logger
}

func NewRSSUseCase(pRepo project.Repository, profRepo profile.Repository, site config.SiteConfig, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{projectRepo: pRepo, profileRepo: profRepo, site: site, logger: log}
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	author := uc.site.Title
	if prof, err := uc.profileRepo.Get(ctx); err == nil {
		author = prof.Name
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       uc.site.Title,
		Link:        &feeds.Link{Href: uc.site.BaseURL},
		Description: "Selected projects and case studies.",
		Author:      &feeds.Author{Name: author},
		Created:     time.Now(),
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list projects for RSS", err)
		return nil, err
	}

	for _, p := range projects {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/work/%s", uc.site.BaseURL, p.Slug)},
			Description: p.Description,
			Created:     p.CreatedAt,
		})
	}

	uc.logger.Info("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
