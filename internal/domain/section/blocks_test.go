package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestRenderFullImage(t *testing.T) {
	s := New(TypeFullImage, ParentHome, 0)
	assert.Empty(t, RenderBlocks([]*Section{s}), "no image_url renders nothing")

	s.ImageURL = strptr("https://x/y.png")
	blocks := RenderBlocks([]*Section{s})
	assert.Len(t, blocks, 1)

	img, ok := blocks[0].(ImageBlock)
	assert.True(t, ok)
	assert.Equal(t, "https://x/y.png", img.URL)
	assert.Equal(t, BlockImage, img.Type())
}

func TestRenderGalleryColumns(t *testing.T) {
	s := New(TypeImageGallery, ParentHome, 0)
	assert.Empty(t, RenderBlocks([]*Section{s}), "empty gallery renders nothing")

	s.Images = []string{"a.jpg", "b.jpg"}
	blocks := RenderBlocks([]*Section{s})
	assert.Len(t, blocks, 1)
	assert.Equal(t, 3, blocks[0].(GalleryBlock).Columns, "columns default to 3")

	s.Settings.Columns = intptr(4)
	blocks = RenderBlocks([]*Section{s})
	assert.Equal(t, 4, blocks[0].(GalleryBlock).Columns)
}

func TestRenderDefaults(t *testing.T) {
	text := New(TypeTextBlock, ParentHome, 0)
	text.Title = strptr("Heading")
	twoCol := New(TypeTwoColumn, ParentHome, 1)
	divider := New(TypeDivider, ParentHome, 2)

	blocks := RenderBlocks([]*Section{text, twoCol, divider})
	assert.Len(t, blocks, 3)

	assert.Equal(t, "left", blocks[0].(TextBlock).Alignment)
	assert.Empty(t, blocks[0].(TextBlock).BgColor)
	assert.Equal(t, "right", blocks[1].(TwoColumnBlock).ImagePosition)
	assert.Equal(t, "medium", blocks[2].(DividerBlock).Spacing)
}

func TestRenderQuoteMapsFields(t *testing.T) {
	s := New(TypeQuote, ParentHome, 0)
	s.Content = strptr("Simplicity is the soul of efficiency.")
	s.Title = strptr("Austin Freeman")

	blocks := RenderBlocks([]*Section{s})
	assert.Len(t, blocks, 1)

	q := blocks[0].(QuoteBlock)
	assert.Equal(t, "Simplicity is the soul of efficiency.", q.Text)
	assert.Equal(t, "Austin Freeman", q.Attribution)
}

func TestRenderSkipsUnknownType(t *testing.T) {
	known := New(TypeTextBlock, ParentHome, 0)
	unknown := New(TypeTextBlock, ParentHome, 1)
	unknown.SectionType = Type("hero_video")

	blocks := RenderBlocks([]*Section{known, unknown})
	assert.Len(t, blocks, 1)
	assert.Equal(t, BlockText, blocks[0].Type())
}

func TestRenderPreservesOrder(t *testing.T) {
	first := New(TypeQuote, ParentHome, 0)
	first.Content = strptr("first")
	skipped := New(TypeFullImage, ParentHome, 1)
	last := New(TypeDivider, ParentHome, 2)

	blocks := RenderBlocks([]*Section{first, skipped, last})
	assert.Len(t, blocks, 2)
	assert.Equal(t, BlockQuote, blocks[0].Type())
	assert.Equal(t, BlockDivider, blocks[1].Type())
}
