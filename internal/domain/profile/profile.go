package profile

import (
	"context"
	"time"
)

// Profile is the single owner record behind the hero, methodology intro and
// footer CTA. There is exactly one row; reads and writes go through Upsert.
type Profile struct {
	Name                   string    `json:"name"`
	Subtitle               string    `json:"subtitle"`
	RoleTitle              string    `json:"role_title"`
	Headline               string    `json:"headline"`
	HeadlineAccent         string    `json:"headline_accent"`
	Description            string    `json:"description"`
	JobTitle               string    `json:"job_title"`
	Location               string    `json:"location"`
	Experience             string    `json:"experience"`
	Specialization         string    `json:"specialization"`
	Email                  string    `json:"email"`
	LinkedinURL            string    `json:"linkedin_url"`
	TwitterURL             string    `json:"twitter_url"`
	GithubURL              string    `json:"github_url"`
	MethodologyQuote       string    `json:"methodology_quote"`
	MethodologyDescription string    `json:"methodology_description"`
	CTAHeadline            string    `json:"cta_headline"`
	CTAAccent              string    `json:"cta_accent"`
	AvatarURL              string    `json:"avatar_url"`
	HeroImageURL           string    `json:"hero_image_url"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
