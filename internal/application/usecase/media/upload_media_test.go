package media

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type countingUploader struct {
	calls    int
	lastBody []byte
	folder   string
}

func (u *countingUploader) Upload(_ context.Context, file io.Reader, folder string, publicID string) (string, error) {
	u.calls++
	u.folder = folder
	u.lastBody, _ = io.ReadAll(file)
	return "https://cdn.example.com/" + folder + "/" + publicID, nil
}

func (u *countingUploader) Delete(context.Context, string) error { return nil }

// pngBytes is a minimal payload http.DetectContentType reports as image/png.
func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return b
}

func TestUploadAcceptsPNGAndForwardsFullBody(t *testing.T) {
	uploader := &countingUploader{}
	uc := NewUploadMediaUseCase(uploader, logger.NewNop())

	payload := pngBytes(2048)
	out, err := uc.Execute(context.Background(), UploadMediaInput{
		File:   bytes.NewReader(payload),
		Size:   int64(len(payload)),
		Folder: FolderSections,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, FolderSections, uploader.folder)
	assert.NotEmpty(t, out.PublicID)
	assert.Contains(t, out.URL, out.PublicID)
	// Sniffed head bytes are stitched back before the body goes out.
	assert.Equal(t, payload, uploader.lastBody)
}

func TestUploadRejectsOversizeWithoutNetworkCall(t *testing.T) {
	uploader := &countingUploader{}
	uc := NewUploadMediaUseCase(uploader, logger.NewNop())

	payload := pngBytes(6 * 1024 * 1024)
	_, err := uc.Execute(context.Background(), UploadMediaInput{
		File: bytes.NewReader(payload),
		Size: int64(len(payload)),
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 0, uploader.calls)
}

func TestUploadRejectsNonImageWithoutNetworkCall(t *testing.T) {
	uploader := &countingUploader{}
	uc := NewUploadMediaUseCase(uploader, logger.NewNop())

	// BMP magic number, a type the accept list does not carry.
	payload := make([]byte, 2*1024*1024)
	copy(payload, []byte{'B', 'M'})
	_, err := uc.Execute(context.Background(), UploadMediaInput{
		File: bytes.NewReader(payload),
		Size: int64(len(payload)),
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 0, uploader.calls)

	// Plain text is no better.
	_, err = uc.Execute(context.Background(), UploadMediaInput{
		File: bytes.NewReader([]byte("definitely not an image")),
		Size: 23,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 0, uploader.calls)
}

func TestUploadRejectsUnknownFolder(t *testing.T) {
	uploader := &countingUploader{}
	uc := NewUploadMediaUseCase(uploader, logger.NewNop())

	payload := pngBytes(100)
	_, err := uc.Execute(context.Background(), UploadMediaInput{
		File:   bytes.NewReader(payload),
		Size:   int64(len(payload)),
		Folder: "../secrets",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 0, uploader.calls)
}

func TestUploadDefaultsToGeneralFolder(t *testing.T) {
	uploader := &countingUploader{}
	uc := NewUploadMediaUseCase(uploader, logger.NewNop())

	payload := pngBytes(100)
	_, err := uc.Execute(context.Background(), UploadMediaInput{
		File: bytes.NewReader(payload),
		Size: int64(len(payload)),
	})
	require.NoError(t, err)
	assert.Equal(t, FolderGeneral, uploader.folder)
}
