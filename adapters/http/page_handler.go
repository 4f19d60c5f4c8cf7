package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pageUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/page"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// PageHandler serves the public read API. Responses come back from the use
// cases as pre-marshalled JSON so cache hits are written straight through.
type PageHandler struct {
	getPageUseCase      *pageUC.GetPageUseCase
	getPortfolioUseCase *pageUC.GetPortfolioUseCase
	logger              logger.Logger
}

func NewPageHandler(getPageUC *pageUC.GetPageUseCase, getPortfolioUC *pageUC.GetPortfolioUseCase, log logger.Logger) *PageHandler {
	return &PageHandler{
		getPageUseCase:      getPageUC,
		getPortfolioUseCase: getPortfolioUC,
		logger:              log,
	}
}

func (h *PageHandler) GetPage(c *gin.Context) {
	body, err := h.getPageUseCase.Execute(c.Request.Context(), c.Param("parent"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *PageHandler) GetPortfolio(c *gin.Context) {
	body, err := h.getPortfolioUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
