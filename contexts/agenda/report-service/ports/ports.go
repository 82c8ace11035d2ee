package ports

import (
	"context"
	"time"
)

// AgendaItem is the report-side projection of one calendar occurrence.
type AgendaItem struct {
	Kind         string
	Date         time.Time
	SourceID     string
	Label        string
	ChurchID     string
	DepartmentID string
	OrganID      string
	StartsAt     time.Time
	EndsAt       time.Time
	AllDay       bool
}

// AgendaProvider feeds reports with the merged occurrence stream.
type AgendaProvider interface {
	OccurrencesInRange(ctx context.Context, from, to time.Time, churchID string) ([]AgendaItem, error)
}

// PDFRenderer turns rendered HTML into a printable document. It is
// optional; without one configured reports fall back to HTML.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

type Clock interface {
	Now() time.Time
}
