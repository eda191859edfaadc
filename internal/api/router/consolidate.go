package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/apperr"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/consolidator"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/dto"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/report"
)

type ConsolidateRouter struct {
	e   *echo.Echo
	svc *consolidator.Service
}

func NewConsolidateRouter(e *echo.Echo, svc *consolidator.Service) *ConsolidateRouter {
	return &ConsolidateRouter{
		e:   e,
		svc: svc,
	}
}

func (r *ConsolidateRouter) Bind() {
	g := r.e.Group("/evaluation")
	g.POST("/consolidate", r.consolidateHandler)
	g.POST("/consolidate/html", r.consolidateHTMLHandler)
}

// consolidateHandler godoc
// @Summary Consolidate evaluation reports
// @Description Parses a batch of free-text evaluation reports and returns per-criterion statistics, recurring findings and a Markdown diagnosis
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.ConsolidateRequest true "Reports to consolidate"
// @Success 200 {object} dto.ConsolidateResponse
// @Failure 400 {object} map[string]string "Empty batch or malformed body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evaluation/consolidate [post]
func (r *ConsolidateRouter) consolidateHandler(c echo.Context) error {
	res, err := r.consolidate(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewConsolidateResponse(res))
}

// consolidateHTMLHandler godoc
// @Summary Consolidate evaluation reports as HTML
// @Description Same input as /evaluation/consolidate, responds with the diagnosis rendered to a standalone HTML page
// @Tags evaluation
// @Accept json
// @Produce html
// @Param request body dto.ConsolidateRequest true "Reports to consolidate"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} map[string]string "Empty batch or malformed body"
// @Router /evaluation/consolidate/html [post]
func (r *ConsolidateRouter) consolidateHTMLHandler(c echo.Context) error {
	res, err := r.consolidate(c)
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, report.HTML(res.Markdown, r.svc.Title()))
}

func (r *ConsolidateRouter) consolidate(c echo.Context) (*consolidator.Result, error) {
	var req dto.ConsolidateRequest
	if err := c.Bind(&req); err != nil {
		return nil, apperr.NewValidationWrap("invalid request body", err)
	}

	if err := c.Validate(&req); err != nil {
		var fe validator.ValidationErrors
		if errors.As(err, &fe) {
			return nil, apperr.NewValidationWrap(consolidator.EmptyBatchMessage, err)
		}
		return nil, err
	}

	return r.svc.Consolidate(c.Request().Context(), req.Messages)
}
