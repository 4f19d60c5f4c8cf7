package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/profile"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	prof, err := h.profileUseCase.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	prof, err := h.profileUseCase.Update(c.Request.Context(), req.ToDomain())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, prof)
}
