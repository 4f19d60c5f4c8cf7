package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/project"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type ProjectHandler struct {
	createProjectUseCase    *projectUC.CreateProjectUseCase
	listProjectsUseCase     *projectUC.ListProjectsUseCase
	getProjectUseCase       *projectUC.GetProjectUseCase
	getProjectBySlugUseCase *projectUC.GetProjectBySlugUseCase
	updateProjectUseCase    *projectUC.UpdateProjectUseCase
	deleteProjectUseCase    *projectUC.DeleteProjectUseCase
	logger                  logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	getBySlugUC *projectUC.GetProjectBySlugUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase:    createUC,
		listProjectsUseCase:     listUC,
		getProjectUseCase:       getUC,
		getProjectBySlugUseCase: getBySlugUC,
		updateProjectUseCase:    updateUC,
		deleteProjectUseCase:    deleteUC,
		logger:                  log,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.CreateProjectInput{
		Slug:            req.Slug,
		Category:        req.Category,
		Number:          req.Number,
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		StatLabel1:      req.StatLabel1,
		StatValue1:      req.StatValue1,
		StatLabel2:      req.StatLabel2,
		StatValue2:      req.StatValue2,
		BgColor:         req.BgColor,
		ThumbnailURL:    req.ThumbnailURL,
		Images:          req.Images,
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Project)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	p, err := h.getProjectUseCase.Execute(c.Request.Context(), projectID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) GetProjectBySlug(c *gin.Context) {
	p, err := h.getProjectBySlugUseCase.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID:       projectID,
		Slug:            req.Slug,
		Category:        req.Category,
		Number:          req.Number,
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		StatLabel1:      req.StatLabel1,
		StatValue1:      req.StatValue1,
		StatLabel2:      req.StatLabel2,
		StatValue2:      req.StatValue2,
		BgColor:         req.BgColor,
		DisplayOrder:    req.DisplayOrder,
		ThumbnailURL:    req.ThumbnailURL,
		Images:          req.Images,
	}

	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), projectID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
