package page

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ngocmaitran/portfolio-cms/adapters/persistence"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/methodology"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/profile"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/project"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/skill"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// GetPortfolioUseCase assembles everything the public site needs in one
// response: profile, projects, skills, methodology, and the rendered home
// page. Cached whole so a warm cache answers without touching postgres.
type GetPortfolioUseCase struct {
	profileRepo     profile.Repository
	projectRepo     project.Repository
	skillRepo       skill.Repository
	methodologyRepo methodology.Repository
	sectionRepo     section.Repository
	cache           service.Cache
	logger          logger.Logger
}

func NewGetPortfolioUseCase(
	profileRepo profile.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	methodologyRepo methodology.Repository,
	sectionRepo section.Repository,
	cache service.Cache,
	log logger.Logger,
) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		profileRepo:     profileRepo,
		projectRepo:     projectRepo,
		skillRepo:       skillRepo,
		methodologyRepo: methodologyRepo,
		sectionRepo:     sectionRepo,
		cache:           cache,
		logger:          log,
	}
}

type PortfolioResponse struct {
	Profile     *profile.Profile    `json:"profile"`
	Projects    []*project.Project  `json:"projects"`
	Skills      []*skill.Skill      `json:"skills"`
	Methodology []*methodology.Item `json:"methodology"`
	HomeBlocks  []section.Block     `json:"home_blocks"`
}

func (uc *GetPortfolioUseCase) Execute(ctx context.Context) ([]byte, error) {
	if cached, _ := uc.cache.Get(ctx, persistence.PortfolioBundleKey); cached != nil {
		return cached, nil
	}

	prof, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		prof = &profile.Profile{}
	}
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.methodologyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	homeSections, err := uc.sectionRepo.ListByParent(ctx, section.ParentHome)
	if err != nil {
		return nil, err
	}

	resp := PortfolioResponse{
		Profile:     prof,
		Projects:    projects,
		Skills:      skills,
		Methodology: items,
		HomeBlocks:  section.RenderBlocks(homeSections),
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, apperror.NewInternal("failed to encode portfolio", err)
	}

	uc.cache.Set(ctx, persistence.PortfolioBundleKey, body)
	return body, nil
}
