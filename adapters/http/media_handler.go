package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/media"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type MediaHandler struct {
	uploadMediaUC *mediaUC.UploadMediaUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadMediaUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadMediaUC: uploadUC, logger: log}
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	input := mediaUC.UploadMediaInput{
		File:   file,
		Size:   fileHeader.Size,
		Folder: c.PostForm("folder"),
	}

	output, err := h.uploadMediaUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": output.URL, "public_id": output.PublicID})
}
