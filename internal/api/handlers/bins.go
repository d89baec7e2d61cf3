package handlers

import (
	"context"
	"net/http"
	"waste-route-service/internal/adapters/binjson"
	"waste-route-service/internal/api/dto"
	"waste-route-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Upper bound for an uploaded bin collection.
const maxUploadBytes = 1 << 20

type binService interface {
	List(ctx context.Context) ([]domain.BinRecord, error)
	Replace(ctx context.Context, bins []domain.BinRecord) error
	Regenerate(ctx context.Context) ([]domain.BinRecord, error)
	Report(ctx context.Context, binID string, status domain.ReportStatus, imageURL string) (domain.WorkerReport, domain.BinRecord, error)
	Reports(ctx context.Context) ([]domain.WorkerReport, error)
}

// BinHandler exposes the bin collection and the operations that change it.
type BinHandler struct {
	Bins binService
}

func (h *BinHandler) Register(r *gin.RouterGroup) {
	r.GET("/bins", h.List)
	r.PUT("/bins", h.Replace)
	r.POST("/bins/regenerate", h.Regenerate)
	r.POST("/bins/:id/reports", h.Report)
	r.GET("/reports", h.ListReports)
}

func (h *BinHandler) List(c *gin.Context) {
	bins, err := h.Bins.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, "list bins", err)
		return
	}
	c.JSON(http.StatusOK, binjson.FromDomainList(bins))
}

// Replace swaps the whole collection for the uploaded JSON array.
// A malformed upload is rejected and the current collection kept.
func (h *BinHandler) Replace(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	defer body.Close()

	bins, err := binjson.Decode(body)
	if err != nil {
		writeServiceError(c, "replace bins", err)
		return
	}

	if err := h.Bins.Replace(c.Request.Context(), bins); err != nil {
		writeServiceError(c, "replace bins", err)
		return
	}
	c.JSON(http.StatusOK, binjson.FromDomainList(bins))
}

func (h *BinHandler) Regenerate(c *gin.Context) {
	bins, err := h.Bins.Regenerate(c.Request.Context())
	if err != nil {
		writeServiceError(c, "regenerate bins", err)
		return
	}
	c.JSON(http.StatusOK, binjson.FromDomainList(bins))
}

func (h *BinHandler) Report(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}

	status, err := domain.ParseReportStatus(req.Status)
	if err != nil {
		writeServiceError(c, "report bin", err)
		return
	}

	report, bin, err := h.Bins.Report(c.Request.Context(), c.Param("id"), status, req.ImageURL)
	if err != nil {
		writeServiceError(c, "report bin", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplyReportResponse{
		Report: toReportResponse(report),
		Bin:    binjson.FromDomain(bin),
	})
}

func (h *BinHandler) ListReports(c *gin.Context) {
	reports, err := h.Bins.Reports(c.Request.Context())
	if err != nil {
		writeServiceError(c, "list reports", err)
		return
	}

	res := dto.ListReportsResponse{Reports: make([]dto.ReportResponse, 0, len(reports))}
	for _, r := range reports {
		res.Reports = append(res.Reports, toReportResponse(r))
	}
	c.JSON(http.StatusOK, res)
}

func toReportResponse(r domain.WorkerReport) dto.ReportResponse {
	return dto.ReportResponse{
		BinID:     r.BinID,
		Status:    string(r.Status),
		Timestamp: r.Timestamp,
		ImageURL:  r.ImageURL,
	}
}
