package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

const (
	// MaxUploadBytes caps a single image upload at 5 MB.
	MaxUploadBytes = 5 * 1024 * 1024

	sniffLen = 512
)

// acceptedImageTypes are the only content types an upload may carry. The type
// is sniffed from the file's leading bytes, never trusted from the request.
var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Upload folders, one per admin surface that accepts images.
const (
	FolderSections  = "sections"
	FolderGalleries = "galleries"
	FolderGeneral   = "general"
)

type UploadMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadMediaUseCase(u service.Uploader, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: u, logger: log}
}

type UploadMediaInput struct {
	File io.Reader
	// Size is the declared length of File, from the multipart header.
	Size   int64
	Folder string
}

type UploadMediaOutput struct {
	URL      string
	PublicID string
}

// Execute validates the file locally and only then pushes it to storage. A
// rejected file never reaches the network.
func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	if input.Size > MaxUploadBytes {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("file is %d bytes, the limit is %d", input.Size, MaxUploadBytes), nil)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(input.File, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperror.NewInternal("failed to read upload", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !acceptedImageTypes[contentType] {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("unsupported file type %q, images only (jpeg, png, webp, gif)", contentType), nil)
	}

	folder := input.Folder
	switch folder {
	case FolderSections, FolderGalleries, FolderGeneral:
	case "":
		folder = FolderGeneral
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown upload folder %q", folder), nil)
	}

	publicID := uuid.New().String()
	body := io.MultiReader(bytes.NewReader(head), input.File)

	url, err := uc.uploader.Upload(ctx, body, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media file", err)
	}

	return &UploadMediaOutput{URL: url, PublicID: publicID}, nil
}
