package domain

import (
	"fmt"
	"strings"
	"time"
)

// Outcome a field worker records after visiting a bin.
type ReportStatus string

const (
	ReportCleared ReportStatus = "CLEARED"
	ReportBlocked ReportStatus = "BLOCKED"
	ReportFull    ReportStatus = "FULL"
)

func ParseReportStatus(s string) (ReportStatus, error) {
	switch ReportStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ReportCleared:
		return ReportCleared, nil
	case ReportBlocked:
		return ReportBlocked, nil
	case ReportFull:
		return ReportFull, nil
	}
	return "", fmt.Errorf("parse report status %q: %w", s, ErrInvalidStatus)
}

// Represents a worker's verification of a single bin visit.
type WorkerReport struct {
	BinID     string
	Status    ReportStatus
	Timestamp time.Time
	ImageURL  string
}

// Apply returns a copy of bin updated to reflect the report.
// A cleared bin is empty, a full bin is at 100%, a blocked bin keeps its level.
func (r WorkerReport) Apply(bin BinRecord) BinRecord {
	switch r.Status {
	case ReportCleared:
		bin.Level = 0
	case ReportFull:
		bin.Level = 100
	}
	bin.LastUpdate = FormatTimestamp(r.Timestamp)
	return bin
}
