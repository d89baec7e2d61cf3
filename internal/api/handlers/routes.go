package handlers

import (
	"bytes"
	"context"
	"net/http"
	"waste-route-service/internal/adapters/binjson"
	"waste-route-service/internal/adapters/report"
	"waste-route-service/internal/api/dto"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type dashboard interface {
	Mode() domain.RouteMode
	SetMode(mode domain.RouteMode) error
	Snapshot(ctx context.Context, mode domain.RouteMode) (services.DashboardView, error)
}

// RouteHandler serves the planned routes and their comparison.
// Every request recomputes both route variants from the current collection.
type RouteHandler struct {
	Dashboard dashboard
}

func (h *RouteHandler) Register(r *gin.RouterGroup) {
	r.GET("/mode", h.GetMode)
	r.PUT("/mode", h.SetMode)
	r.GET("/routes", h.Routes)
	r.GET("/metrics", h.Metrics)
	r.GET("/report.xlsx", h.Workbook)
}

func (h *RouteHandler) GetMode(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ModeResponse{Mode: string(h.Dashboard.Mode())})
}

func (h *RouteHandler) SetMode(c *gin.Context) {
	var req dto.ModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}

	mode, err := domain.ParseRouteMode(req.Mode)
	if err != nil {
		writeServiceError(c, "set mode", err)
		return
	}
	if err := h.Dashboard.SetMode(mode); err != nil {
		writeServiceError(c, "set mode", err)
		return
	}
	c.JSON(http.StatusOK, dto.ModeResponse{Mode: string(mode)})
}

// Routes returns both planned paths plus the active one.
// The optional ?mode= query selects the active path for this request only.
func (h *RouteHandler) Routes(c *gin.Context) {
	var mode domain.RouteMode
	if q := c.Query("mode"); q != "" {
		m, err := domain.ParseRouteMode(q)
		if err != nil {
			writeServiceError(c, "routes", err)
			return
		}
		mode = m
	}

	view, err := h.Dashboard.Snapshot(c.Request.Context(), mode)
	if err != nil {
		writeServiceError(c, "routes", err)
		return
	}

	c.JSON(http.StatusOK, dto.RoutesResponse{
		Mode:      string(view.Mode),
		Depot:     dto.PointResponse{Lat: view.Depot.Lat, Lng: view.Depot.Lng},
		Active:    binjson.FromDomainList(view.Active()),
		Fixed:     binjson.FromDomainList(view.FixedPath),
		Optimized: binjson.FromDomainList(view.OptimizedPath),
	})
}

func (h *RouteHandler) Metrics(c *gin.Context) {
	view, err := h.Dashboard.Snapshot(c.Request.Context(), "")
	if err != nil {
		writeServiceError(c, "metrics", err)
		return
	}
	c.JSON(http.StatusOK, toComparisonResponse(view.Comparison))
}

// Workbook downloads the comparison table as an Excel file.
func (h *RouteHandler) Workbook(c *gin.Context) {
	view, err := h.Dashboard.Snapshot(c.Request.Context(), "")
	if err != nil {
		writeServiceError(c, "workbook", err)
		return
	}

	// Render fully before writing headers so a failure can still become a 500.
	var buf bytes.Buffer
	if err := report.WriteComparison(&buf, view.Comparison, view.OptimizedPath); err != nil {
		writeServiceError(c, "workbook", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="route-comparison.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func toMetricsResponse(m domain.RouteMetrics) dto.MetricsResponse {
	return dto.MetricsResponse{
		Distance:      m.DistanceKm,
		Fuel:          m.FuelLiters,
		Time:          m.TimeMinutes,
		BinsCollected: m.BinsCollected,
	}
}

func toComparisonResponse(cmp domain.RouteComparison) dto.ComparisonResponse {
	return dto.ComparisonResponse{
		Fixed:     toMetricsResponse(cmp.Fixed),
		Optimized: toMetricsResponse(cmp.Optimized),
		Gains: dto.GainsResponse{
			Distance: cmp.DistanceGain,
			Fuel:     cmp.FuelGain,
			Time:     cmp.TimeGain,
		},
	}
}
