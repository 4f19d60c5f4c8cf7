package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/profile"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = `
	name, subtitle, role_title, headline, headline_accent, description,
	job_title, location, experience, specialization, email,
	linkedin_url, twitter_url, github_url,
	methodology_quote, methodology_description, cta_headline, cta_accent,
	avatar_url, hero_image_url, updated_at`

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	// Single-row table, id pinned to 1.
	query := `SELECT ` + profileColumns + ` FROM profile WHERE id = 1`

	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.Name, &p.Subtitle, &p.RoleTitle, &p.Headline, &p.HeadlineAccent, &p.Description,
		&p.JobTitle, &p.Location, &p.Experience, &p.Specialization, &p.Email,
		&p.LinkedinURL, &p.TwitterURL, &p.GithubURL,
		&p.MethodologyQuote, &p.MethodologyDescription, &p.CTAHeadline, &p.CTAAccent,
		&p.AvatarURL, &p.HeroImageURL, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "singleton")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profile (
			id, name, subtitle, role_title, headline, headline_accent, description,
			job_title, location, experience, specialization, email,
			linkedin_url, twitter_url, github_url,
			methodology_quote, methodology_description, cta_headline, cta_accent,
			avatar_url, hero_image_url, updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (id) DO UPDATE SET
			name = $1, subtitle = $2, role_title = $3, headline = $4, headline_accent = $5,
			description = $6, job_title = $7, location = $8, experience = $9,
			specialization = $10, email = $11, linkedin_url = $12, twitter_url = $13,
			github_url = $14, methodology_quote = $15, methodology_description = $16,
			cta_headline = $17, cta_accent = $18, avatar_url = $19, hero_image_url = $20,
			updated_at = $21
	`
	_, err := r.db.Exec(ctx, query,
		p.Name, p.Subtitle, p.RoleTitle, p.Headline, p.HeadlineAccent, p.Description,
		p.JobTitle, p.Location, p.Experience, p.Specialization, p.Email,
		p.LinkedinURL, p.TwitterURL, p.GithubURL,
		p.MethodologyQuote, p.MethodologyDescription, p.CTAHeadline, p.CTAAccent,
		p.AvatarURL, p.HeroImageURL, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
