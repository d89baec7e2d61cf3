package dto

import "waste-route-service/internal/adapters/binjson"

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MetricsResponse struct {
	Distance      float64 `json:"distance"`
	Fuel          float64 `json:"fuel"`
	Time          int     `json:"time"`
	BinsCollected int     `json:"binsCollected"`
}

type GainsResponse struct {
	Distance float64 `json:"distance"`
	Fuel     float64 `json:"fuel"`
	Time     float64 `json:"time"`
}

type ComparisonResponse struct {
	Fixed     MetricsResponse `json:"fixed"`
	Optimized MetricsResponse `json:"optimized"`
	Gains     GainsResponse   `json:"gains"`
}

type RoutesResponse struct {
	Mode      string        `json:"mode"`
	Depot     PointResponse `json:"depot"`
	Active    []binjson.Bin `json:"active"`
	Fixed     []binjson.Bin `json:"fixed"`
	Optimized []binjson.Bin `json:"optimized"`
}

type ModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type ModeResponse struct {
	Mode string `json:"mode"`
}
