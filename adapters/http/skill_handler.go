package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	skillUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/skill"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{skillUseCase: uc, logger: log}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	s, err := h.skillUseCase.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// SaveSkills takes the editor's full list in display order.
func (h *SkillHandler) SaveSkills(c *gin.Context) {
	var req []SkillRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	rows := make([]skillUC.SaveAllInput, len(req))
	for i, r := range req {
		rows[i] = skillUC.SaveAllInput{ID: r.ID, Name: r.Name}
	}

	saved, failed, err := h.skillUseCase.SaveAll(c.Request.Context(), rows)
	if err != nil {
		c.Error(err)
		return
	}
	if failed == nil {
		failed = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"skills": saved, "failed_indices": failed})
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill ID", err))
		return
	}

	if err := h.skillUseCase.Delete(c.Request.Context(), skillID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "skill deleted"})
}
