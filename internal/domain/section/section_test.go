package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSettingsPerType(t *testing.T) {
	s := New(TypeTextBlock, ParentHome, 0)
	s.Settings.Alignment = strptr("center")
	assert.NoError(t, s.Validate())

	s.Settings.Alignment = strptr("justify")
	assert.Error(t, s.Validate())

	// columns belongs to image_gallery only
	s = New(TypeTextBlock, ParentHome, 0)
	s.Settings.Columns = intptr(3)
	assert.Error(t, s.Validate())

	g := New(TypeImageGallery, ParentHome, 0)
	g.Settings.Columns = intptr(4)
	assert.NoError(t, g.Validate())
	g.Settings.Columns = intptr(5)
	assert.Error(t, g.Validate())

	// bg_color is universal
	d := New(TypeDivider, ParentHome, 0)
	d.Settings.BgColor = strptr("#f5f5f0")
	d.Settings.Spacing = strptr("large")
	assert.NoError(t, d.Validate())
}

func TestValidateRejectsUnknownTypeAndEmptyParent(t *testing.T) {
	s := New(Type("carousel"), ParentHome, 0)
	assert.ErrorIs(t, s.Validate(), ErrInvalidType)

	s = New(TypeQuote, "", 0)
	assert.ErrorIs(t, s.Validate(), ErrInvalidParent)
}

func TestValidateCapsGalleryImages(t *testing.T) {
	g := New(TypeImageGallery, ParentHome, 0)
	for i := 0; i < MaxGalleryImages; i++ {
		g.Images = append(g.Images, "img.jpg")
	}
	assert.NoError(t, g.Validate())

	g.Images = append(g.Images, "one-too-many.jpg")
	assert.ErrorIs(t, g.Validate(), ErrTooManyImages)
}

func TestCloneCopiesContentWithNewIdentity(t *testing.T) {
	s := New(TypeImageGallery, "my-project", 2)
	s.Title = strptr("Gallery")
	s.Images = []string{"a.jpg", "b.jpg"}
	s.Settings.Columns = intptr(2)

	dup := s.Clone()

	assert.NotEqual(t, s.ID, dup.ID)
	assert.Equal(t, s.SectionType, dup.SectionType)
	assert.Equal(t, s.Parent, dup.Parent)
	assert.Equal(t, s.Images, dup.Images)
	assert.Equal(t, *s.Settings.Columns, *dup.Settings.Columns)

	// Deep copy: mutating the duplicate must not leak into the original.
	dup.Images[0] = "c.jpg"
	*dup.Settings.Columns = 4
	assert.Equal(t, "a.jpg", s.Images[0])
	assert.Equal(t, 2, *s.Settings.Columns)
}
