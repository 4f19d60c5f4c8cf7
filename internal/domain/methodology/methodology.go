package methodology

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item is one numbered step of the methodology section, with its bullet list.
type Item struct {
	ID           uuid.UUID `json:"id"`
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	Items        []string  `json:"items"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrEmptyTitle = errors.New("methodology item title is required")

func (i *Item) Validate() error {
	if i.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Item, error)
}
