package section

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type is the closed set of page content block variants. A section never
// changes type after creation; switching type is delete + recreate.
type Type string

const (
	TypeTextBlock    Type = "text_block"
	TypeFullImage    Type = "full_image"
	TypeImageGallery Type = "image_gallery"
	TypeTwoColumn    Type = "two_column"
	TypeQuote        Type = "quote"
	TypeDivider      Type = "divider"
)

// ParentHome is the page key of the landing page. Every other parent value
// is a project slug.
const ParentHome = "home"

// MaxGalleryImages caps a gallery's image list. The editor stops offering
// uploads at this point, and writes past it are rejected outright.
const MaxGalleryImages = 12

var (
	ErrInvalidType   = errors.New("unknown section type")
	ErrInvalidParent = errors.New("parent page key is required")
	ErrTooManyImages = fmt.Errorf("a gallery holds at most %d images", MaxGalleryImages)
)

func (t Type) Valid() bool {
	switch t {
	case TypeTextBlock, TypeFullImage, TypeImageGallery, TypeTwoColumn, TypeQuote, TypeDivider:
		return true
	}
	return false
}

// Section is one unit of page content. Title, Content and ImageURL carry
// variant-dependent meaning: for a quote the title is the attribution, for a
// gallery it is the caption.
type Section struct {
	ID           uuid.UUID `json:"id"`
	SectionType  Type      `json:"section_type"`
	Title        *string   `json:"title"`
	Content      *string   `json:"content"`
	ImageURL     *string   `json:"image_url"`
	Images       []string  `json:"images"`
	DisplayOrder int       `json:"display_order"`
	Parent       string    `json:"parent"`
	Settings     Settings  `json:"settings"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// New returns an empty section of the given type, ready to be persisted and
// then filled in by the block form.
func New(t Type, parent string, order int) *Section {
	now := time.Now().UTC()
	return &Section{
		ID:           uuid.New(),
		SectionType:  t,
		Images:       []string{},
		DisplayOrder: order,
		Parent:       parent,
		Settings:     Settings{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *Section) Validate() error {
	if !s.SectionType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, s.SectionType)
	}
	if s.Parent == "" {
		return ErrInvalidParent
	}
	if s.SectionType == TypeImageGallery && len(s.Images) > MaxGalleryImages {
		return ErrTooManyImages
	}
	return s.Settings.ValidForType(s.SectionType)
}

// Clone copies every content field into a fresh section with a new identity.
// Used by the duplicate operation; the caller assigns the display order.
func (s *Section) Clone() *Section {
	now := time.Now().UTC()
	dup := *s
	dup.ID = uuid.New()
	dup.CreatedAt = now
	dup.UpdatedAt = now
	dup.Images = append([]string{}, s.Images...)
	dup.Settings = s.Settings.clone()
	return &dup
}

type Repository interface {
	Save(ctx context.Context, s *Section) error
	Update(ctx context.Context, s *Section) error
	UpdateOrder(ctx context.Context, id uuid.UUID, displayOrder int) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Section, error)
	// ListByParent returns the page's sections ordered by display_order
	// ascending, store-side ties resolved stably.
	ListByParent(ctx context.Context, parent string) ([]*Section, error)
	ListParents(ctx context.Context) ([]string, error)
}
