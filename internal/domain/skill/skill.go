package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Skill is one entry of the marquee strip.
type Skill struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrEmptyName = errors.New("skill name is required")

func (s *Skill) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Skill, error)
}
