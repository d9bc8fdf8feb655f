package handler

import (
	"errors"
	"log"
	"net/http"

	"dashboard/internal/middleware"
	"dashboard/internal/service"
	"dashboard/internal/trend"
	"dashboard/pkg/pagination"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

const causeInvalidRequest = "invalid_request"

// TrendQuery is the query string shared by every trend endpoint. The upper
// bound on Months comes from configuration and is checked by the service.
type TrendQuery struct {
	Months int `form:"months" binding:"omitempty,min=1"`
}

// BreakdownPage is one page of a per-product breakdown.
type BreakdownPage struct {
	trend.BreakdownPayload
	Pagination pagination.Meta `json:"pagination"`
}

type TrendHandler struct {
	trendService service.TrendService
}

func NewTrendHandler(trendService service.TrendService) *TrendHandler {
	return &TrendHandler{trendService: trendService}
}

func (h *TrendHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/trends-data", h.GetTrends)
		api.GET("/policy-count-by-month", h.GetPolicyCountByMonth)
		api.GET("/policy-count-yoy", h.GetPolicyCountYoY)
		api.GET("/reinstatements-data", h.GetReinstatements)
		api.GET("/lapses-data", h.GetLapses)
	}
}

// @Summary      Get Trends
// @Description  Monthly sales, reinstatements, lapses and policy count on one aligned period axis
// @Tags         Trends
// @Produce      json
// @Param        months query int false "Months back from today (1 to REPORT_MAX_MONTHS)"
// @Success      200 {object} trend.TrendsPayload
// @Failure      400 {object} response.Response "Invalid query"
// @Failure      503 {object} response.Response "Source unavailable"
// @Failure      500 {object} response.Response "Internal server error"
// @Router       /api/trends-data [get]
func (h *TrendHandler) GetTrends(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	payload, err := h.trendService.GetTrends(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// @Summary      Get Policy Count By Month
// @Description  Aligned series, policy count (sales + reinstatements), month-over-month change in percent, totals and diagnostics
// @Tags         Trends
// @Produce      json
// @Param        months query int false "Months back from today (1 to REPORT_MAX_MONTHS)"
// @Success      200 {object} trend.ReportPayload
// @Failure      400 {object} response.Response "Invalid query"
// @Failure      503 {object} response.Response "Source unavailable"
// @Failure      500 {object} response.Response "Internal server error"
// @Router       /api/policy-count-by-month [get]
func (h *TrendHandler) GetPolicyCountByMonth(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	payload, err := h.trendService.GetPolicyCountByMonth(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// @Summary      Get Policy Count Year Over Year
// @Description  Each month compared with the same month one year earlier
// @Tags         Trends
// @Produce      json
// @Param        months query int false "Months back from today (1 to REPORT_MAX_MONTHS)"
// @Success      200 {object} trend.YoYPayload
// @Failure      400 {object} response.Response "Invalid query"
// @Failure      503 {object} response.Response "Source unavailable"
// @Failure      500 {object} response.Response "Internal server error"
// @Router       /api/policy-count-yoy [get]
func (h *TrendHandler) GetPolicyCountYoY(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	payload, err := h.trendService.GetPolicyCountYoY(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// @Summary      Get Reinstatements Breakdown
// @Description  Reinstatements per product and month, newest month first
// @Tags         Breakdown
// @Produce      json
// @Param        months query int false "Months back from today (1 to REPORT_MAX_MONTHS)"
// @Param        page   query int false "Page number" default(1)
// @Param        limit  query int false "Items per page" default(100)
// @Success      200 {object} response.Response{data=BreakdownPage}
// @Failure      400 {object} response.Response "Invalid query"
// @Failure      503 {object} response.Response "Source unavailable"
// @Failure      500 {object} response.Response "Internal server error"
// @Router       /api/reinstatements-data [get]
func (h *TrendHandler) GetReinstatements(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	entries, err := h.trendService.GetReinstatementBreakdown(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBreakdown(c, trend.KindReinstatements, entries)
}

// @Summary      Get Lapses Breakdown
// @Description  Lapsed policies per product, status and month, newest month first
// @Tags         Breakdown
// @Produce      json
// @Param        months query int false "Months back from today (1 to REPORT_MAX_MONTHS)"
// @Param        page   query int false "Page number" default(1)
// @Param        limit  query int false "Items per page" default(100)
// @Success      200 {object} response.Response{data=BreakdownPage}
// @Failure      400 {object} response.Response "Invalid query"
// @Failure      503 {object} response.Response "Source unavailable"
// @Failure      500 {object} response.Response "Internal server error"
// @Router       /api/lapses-data [get]
func (h *TrendHandler) GetLapses(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	entries, err := h.trendService.GetLapseBreakdown(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	writeBreakdown(c, trend.KindLapses, entries)
}

func bindFilter(c *gin.Context) (service.TrendFilter, bool) {
	var q TrendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorWithCause(http.StatusBadRequest, "Invalid query: "+err.Error(), causeInvalidRequest))
		return service.TrendFilter{}, false
	}
	return service.TrendFilter{Months: q.Months}, true
}

func writeBreakdown(c *gin.Context, kind trend.Kind, entries []trend.BreakdownEntry) {
	params := pagination.Parse(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, BreakdownPage{
		BreakdownPayload: trend.NewBreakdownPayload(kind, pagination.Slice(entries, params)),
		Pagination:       pagination.MetaFor(params, len(entries)),
	}))
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	cause := trend.Cause(err)
	switch {
	case errors.Is(err, service.ErrInvalidFilter):
		status, cause = http.StatusBadRequest, causeInvalidRequest
	case errors.Is(err, trend.ErrSourceUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", middleware.RequestIDFrom(c.Request.Context()), c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, response.ErrorWithCause(status, err.Error(), cause))
}
