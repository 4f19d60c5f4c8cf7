package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	methodologyUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/methodology"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type MethodologyHandler struct {
	methodologyUseCase *methodologyUC.MethodologyUseCase
	logger             logger.Logger
}

func NewMethodologyHandler(uc *methodologyUC.MethodologyUseCase, log logger.Logger) *MethodologyHandler {
	return &MethodologyHandler{methodologyUseCase: uc, logger: log}
}

func (h *MethodologyHandler) ListItems(c *gin.Context) {
	items, err := h.methodologyUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MethodologyHandler) CreateItem(c *gin.Context) {
	var req CreateMethodologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	item, err := h.methodologyUseCase.Create(c.Request.Context(), methodologyUC.CreateItemInput{
		Number: req.Number,
		Title:  req.Title,
		Items:  req.Items,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MethodologyHandler) SaveItems(c *gin.Context) {
	var req []MethodologyRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	rows := make([]methodologyUC.SaveAllInput, len(req))
	for i, r := range req {
		rows[i] = methodologyUC.SaveAllInput{ID: r.ID, Number: r.Number, Title: r.Title, Items: r.Items}
	}

	saved, failed, err := h.methodologyUseCase.SaveAll(c.Request.Context(), rows)
	if err != nil {
		c.Error(err)
		return
	}
	if failed == nil {
		failed = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"items": saved, "failed_indices": failed})
}

func (h *MethodologyHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid methodology item ID", err))
		return
	}

	if err := h.methodologyUseCase.Delete(c.Request.Context(), itemID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "methodology item deleted"})
}
