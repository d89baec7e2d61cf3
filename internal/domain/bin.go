package domain

import "time"

// Represents a single monitored waste bin.
// A BinRecord is treated as a value: planners and evaluators never mutate it,
// updates always produce a new record.
type BinRecord struct {
	ID         string
	Lat        float64
	Lng        float64
	Level      int // fill level in percent, 0-100
	LastUpdate string
}

// Return the bin location as a GeoPoint.
func (b BinRecord) Position() GeoPoint { return GeoPoint{Lat: b.Lat, Lng: b.Lng} }

// FormatTimestamp renders t as an ISO-8601 UTC timestamp with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
