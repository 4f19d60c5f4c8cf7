package project

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Project is one case study. Slug doubles as a page-builder parent key, so a
// project page can carry its own section list.
type Project struct {
	ID              uuid.UUID `json:"id"`
	Slug            string    `json:"slug"`
	Category        string    `json:"category"`
	Number          string    `json:"number"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"`
	StatLabel1      string    `json:"stat_label_1"`
	StatValue1      string    `json:"stat_value_1"`
	StatLabel2      string    `json:"stat_label_2"`
	StatValue2      string    `json:"stat_value_2"`
	BgColor         string    `json:"bg_color"`
	DisplayOrder    int       `json:"display_order"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Images          []string  `json:"images"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

var (
	ErrInvalidSlug     = errors.New("slug only allows lowercase letters, numbers, and hyphens")
	ErrProjectNotFound = errors.New("project not found")
	slugRegex          = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func (p *Project) Validate() error {
	if !slugRegex.MatchString(p.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
	// List returns every project ordered by display_order ascending.
	List(ctx context.Context) ([]*Project, error)
	ListSlugs(ctx context.Context) ([]string, error)
}
