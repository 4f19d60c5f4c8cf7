package section

// BlockType tags a rendered block view model.
type BlockType string

const (
	BlockText      BlockType = "text"
	BlockImage     BlockType = "image"
	BlockGallery   BlockType = "gallery"
	BlockTwoColumn BlockType = "two_column"
	BlockQuote     BlockType = "quote"
	BlockDivider   BlockType = "divider"
)

// Block is a rendered section with its settings resolved to concrete values.
type Block interface {
	Type() BlockType
}

type TextBlock struct {
	Kind      BlockType `json:"type"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content,omitempty"`
	Alignment string    `json:"alignment"`
	BgColor   string    `json:"bg_color,omitempty"`
}

type ImageBlock struct {
	Kind    BlockType `json:"type"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
	BgColor string    `json:"bg_color,omitempty"`
}

type GalleryBlock struct {
	Kind    BlockType `json:"type"`
	Title   string    `json:"title,omitempty"`
	Images  []string  `json:"images"`
	Columns int       `json:"columns"`
	BgColor string    `json:"bg_color,omitempty"`
}

type TwoColumnBlock struct {
	Kind          BlockType `json:"type"`
	Title         string    `json:"title,omitempty"`
	Content       string    `json:"content,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	ImagePosition string    `json:"image_position"`
	BgColor       string    `json:"bg_color,omitempty"`
}

type QuoteBlock struct {
	Kind        BlockType `json:"type"`
	Text        string    `json:"text,omitempty"`
	Attribution string    `json:"attribution,omitempty"`
	BgColor     string    `json:"bg_color,omitempty"`
}

type DividerBlock struct {
	Kind    BlockType `json:"type"`
	Spacing string    `json:"spacing"`
	BgColor string    `json:"bg_color,omitempty"`
}

func (b TextBlock) Type() BlockType      { return BlockText }
func (b ImageBlock) Type() BlockType     { return BlockImage }
func (b GalleryBlock) Type() BlockType   { return BlockGallery }
func (b TwoColumnBlock) Type() BlockType { return BlockTwoColumn }
func (b QuoteBlock) Type() BlockType     { return BlockQuote }
func (b DividerBlock) Type() BlockType   { return BlockDivider }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RenderBlocks projects an ordered section list into the block sequence the
// visitor-facing page shows, in the same order. Sections missing their
// required content render nothing: a full_image without a URL and a gallery
// without images are skipped, as is any type this version does not know.
func RenderBlocks(sections []*Section) []Block {
	blocks := make([]Block, 0, len(sections))
	for _, s := range sections {
		if b := renderOne(s); b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func renderOne(s *Section) Block {
	switch s.SectionType {
	case TypeTextBlock:
		return TextBlock{
			Kind:      BlockText,
			Title:     deref(s.Title),
			Content:   deref(s.Content),
			Alignment: s.Settings.AlignmentOrDefault(),
			BgColor:   s.Settings.BgColorOrDefault(),
		}
	case TypeFullImage:
		if s.ImageURL == nil || *s.ImageURL == "" {
			return nil
		}
		return ImageBlock{
			Kind:    BlockImage,
			URL:     *s.ImageURL,
			Caption: deref(s.Title),
			BgColor: s.Settings.BgColorOrDefault(),
		}
	case TypeImageGallery:
		if len(s.Images) == 0 {
			return nil
		}
		return GalleryBlock{
			Kind:    BlockGallery,
			Title:   deref(s.Title),
			Images:  s.Images,
			Columns: s.Settings.ColumnsOrDefault(),
			BgColor: s.Settings.BgColorOrDefault(),
		}
	case TypeTwoColumn:
		return TwoColumnBlock{
			Kind:          BlockTwoColumn,
			Title:         deref(s.Title),
			Content:       deref(s.Content),
			ImageURL:      deref(s.ImageURL),
			ImagePosition: s.Settings.ImagePositionOrDefault(),
			BgColor:       s.Settings.BgColorOrDefault(),
		}
	case TypeQuote:
		return QuoteBlock{
			Kind:        BlockQuote,
			Text:        deref(s.Content),
			Attribution: deref(s.Title),
			BgColor:     s.Settings.BgColorOrDefault(),
		}
	case TypeDivider:
		return DividerBlock{
			Kind:    BlockDivider,
			Spacing: s.Settings.SpacingOrDefault(),
			BgColor: s.Settings.BgColorOrDefault(),
		}
	default:
		// Forward compatibility: rows written by a newer schema render nothing.
		return nil
	}
}
