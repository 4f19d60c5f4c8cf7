package section

import "fmt"

// Settings is the variant-dependent styling bag. Each field is optional;
// a missing field falls back to a documented default at render time.
// Writes are strict (a key outside its variant's set is rejected), reads are
// lenient (the renderer ignores keys it has no use for).
type Settings struct {
	Alignment     *string `json:"alignment,omitempty"`
	BgColor       *string `json:"bg_color,omitempty"`
	Columns       *int    `json:"columns,omitempty"`
	ImagePosition *string `json:"image_position,omitempty"`
	Spacing       *string `json:"spacing,omitempty"`
}

const (
	DefaultAlignment     = "left"
	DefaultColumns       = 3
	DefaultImagePosition = "right"
	DefaultSpacing       = "medium"
)

// AlignmentOrDefault applies to text_block only.
func (s Settings) AlignmentOrDefault() string {
	if s.Alignment != nil {
		return *s.Alignment
	}
	return DefaultAlignment
}

// BgColorOrDefault is universal; empty string means transparent.
func (s Settings) BgColorOrDefault() string {
	if s.BgColor != nil {
		return *s.BgColor
	}
	return ""
}

// ColumnsOrDefault applies to image_gallery only.
func (s Settings) ColumnsOrDefault() int {
	if s.Columns != nil {
		return *s.Columns
	}
	return DefaultColumns
}

// ImagePositionOrDefault applies to two_column only.
func (s Settings) ImagePositionOrDefault() string {
	if s.ImagePosition != nil {
		return *s.ImagePosition
	}
	return DefaultImagePosition
}

// SpacingOrDefault applies to divider only.
func (s Settings) SpacingOrDefault() string {
	if s.Spacing != nil {
		return *s.Spacing
	}
	return DefaultSpacing
}

// ValidForType rejects settings that carry keys outside the variant's set,
// or values outside each key's allowed range. BgColor is allowed everywhere.
func (s Settings) ValidForType(t Type) error {
	if s.Alignment != nil {
		if t != TypeTextBlock {
			return fmt.Errorf("alignment is not a %s setting", t)
		}
		switch *s.Alignment {
		case "left", "center", "right":
		default:
			return fmt.Errorf("invalid alignment %q", *s.Alignment)
		}
	}
	if s.Columns != nil {
		if t != TypeImageGallery {
			return fmt.Errorf("columns is not a %s setting", t)
		}
		switch *s.Columns {
		case 2, 3, 4:
		default:
			return fmt.Errorf("invalid column count %d", *s.Columns)
		}
	}
	if s.ImagePosition != nil {
		if t != TypeTwoColumn {
			return fmt.Errorf("image_position is not a %s setting", t)
		}
		switch *s.ImagePosition {
		case "left", "right":
		default:
			return fmt.Errorf("invalid image position %q", *s.ImagePosition)
		}
	}
	if s.Spacing != nil {
		if t != TypeDivider {
			return fmt.Errorf("spacing is not a %s setting", t)
		}
		switch *s.Spacing {
		case "small", "medium", "large":
		default:
			return fmt.Errorf("invalid spacing %q", *s.Spacing)
		}
	}
	return nil
}

func (s Settings) clone() Settings {
	c := Settings{}
	if s.Alignment != nil {
		v := *s.Alignment
		c.Alignment = &v
	}
	if s.BgColor != nil {
		v := *s.BgColor
		c.BgColor = &v
	}
	if s.Columns != nil {
		v := *s.Columns
		c.Columns = &v
	}
	if s.ImagePosition != nil {
		v := *s.ImagePosition
		c.ImagePosition = &v
	}
	if s.Spacing != nil {
		v := *s.Spacing
		c.Spacing = &v
	}
	return c
}
