package distance

import (
	"math"
	"waste-route-service/internal/domain"
)

type MockPair struct {
	From, To domain.GeoPoint
	Km       float64
}

// MockDistanceCalculator serves distances from a fixed table.
// Pairs are symmetric; a pair missing from the table yields NaN.
type MockDistanceCalculator struct {
	m map[[2]domain.GeoPoint]float64
}

func NewMockDistanceCalculator(pairs []MockPair) *MockDistanceCalculator {
	m := make(map[[2]domain.GeoPoint]float64, 2*len(pairs))
	for _, p := range pairs {
		m[[2]domain.GeoPoint{p.From, p.To}] = p.Km
		m[[2]domain.GeoPoint{p.To, p.From}] = p.Km
	}
	return &MockDistanceCalculator{m: m}
}

func (c *MockDistanceCalculator) Distance(a, b domain.GeoPoint) float64 {
	if a == b {
		return 0
	}
	d, ok := c.m[[2]domain.GeoPoint{a, b}]
	if !ok {
		return math.NaN()
	}
	return d
}
