package dto

import (
	"time"
	"waste-route-service/internal/adapters/binjson"
)

type ReportRequest struct {
	Status   string `json:"status" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
}

type ReportResponse struct {
	BinID     string    `json:"binId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

type ApplyReportResponse struct {
	Report ReportResponse `json:"report"`
	Bin    binjson.Bin    `json:"bin"`
}

type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}
