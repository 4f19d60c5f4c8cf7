package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	builderUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/builder"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// SectionHandler is the admin surface of the page builder.
type SectionHandler struct {
	listSectionsUseCase     *builderUC.ListSectionsUseCase
	listParentsUseCase      *builderUC.ListParentsUseCase
	createSectionUseCase    *builderUC.CreateSectionUseCase
	saveSectionUseCase      *builderUC.SaveSectionUseCase
	reorderSectionsUseCase  *builderUC.ReorderSectionsUseCase
	saveOrderUseCase        *builderUC.SaveOrderUseCase
	duplicateSectionUseCase *builderUC.DuplicateSectionUseCase
	deleteSectionUseCase    *builderUC.DeleteSectionUseCase
	logger                  logger.Logger
}

func NewSectionHandler(
	listUC *builderUC.ListSectionsUseCase,
	listParentsUC *builderUC.ListParentsUseCase,
	createUC *builderUC.CreateSectionUseCase,
	saveUC *builderUC.SaveSectionUseCase,
	reorderUC *builderUC.ReorderSectionsUseCase,
	saveOrderUC *builderUC.SaveOrderUseCase,
	duplicateUC *builderUC.DuplicateSectionUseCase,
	deleteUC *builderUC.DeleteSectionUseCase,
	log logger.Logger,
) *SectionHandler {
	return &SectionHandler{
		listSectionsUseCase:     listUC,
		listParentsUseCase:      listParentsUC,
		createSectionUseCase:    createUC,
		saveSectionUseCase:      saveUC,
		reorderSectionsUseCase:  reorderUC,
		saveOrderUseCase:        saveOrderUC,
		duplicateSectionUseCase: duplicateUC,
		deleteSectionUseCase:    deleteUC,
		logger:                  log,
	}
}

func (h *SectionHandler) ListParents(c *gin.Context) {
	parents, err := h.listParentsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parents": parents})
}

func (h *SectionHandler) ListSections(c *gin.Context) {
	parent := c.Param("parent")
	sections, err := h.listSectionsUseCase.Execute(c.Request.Context(), parent)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	s, err := h.createSectionUseCase.Execute(c.Request.Context(), builderUC.CreateSectionInput{
		Type:   req.Type,
		Parent: req.Parent,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SectionHandler) SaveSection(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid section ID", err))
		return
	}
	var req SaveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	s, err := h.saveSectionUseCase.Execute(c.Request.Context(), builderUC.SaveSectionInput{
		SectionID:    sectionID,
		Title:        req.Title,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		Images:       req.Images,
		DisplayOrder: req.DisplayOrder,
		Parent:       req.Parent,
		Settings:     req.Settings,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ReorderSections swaps one section with its neighbor and persists the
// resulting dense order.
func (h *SectionHandler) ReorderSections(c *gin.Context) {
	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	out, err := h.reorderSectionsUseCase.Execute(c.Request.Context(), builderUC.ReorderSectionsInput{
		Parent:    req.Parent,
		Index:     req.Index,
		Direction: req.Direction,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToOrderedSectionsResponse(out.Sections, out.FailedIndices))
}

// SaveOrder persists a full page order pushed by the admin panel.
func (h *SectionHandler) SaveOrder(c *gin.Context) {
	parent := c.Param("parent")
	var req SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	out, err := h.saveOrderUseCase.Execute(c.Request.Context(), builderUC.SaveOrderInput{
		Parent:     parent,
		OrderedIDs: req.OrderedIDs,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToOrderedSectionsResponse(out.Sections, out.FailedIndices))
}

func (h *SectionHandler) DuplicateSection(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid section ID", err))
		return
	}

	s, err := h.duplicateSectionUseCase.Execute(c.Request.Context(), sectionID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SectionHandler) DeleteSection(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid section ID", err))
		return
	}

	if err := h.deleteSectionUseCase.Execute(c.Request.Context(), sectionID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "section deleted"})
}
