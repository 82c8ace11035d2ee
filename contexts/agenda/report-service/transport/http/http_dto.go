package httptransport

// ErrorResponse is the uniform error body for the report endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CalendarReportRequest struct {
	Period   string `json:"period"`
	Layout   string `json:"layout,omitempty"`
	Format   string `json:"format,omitempty"`
	Year     int    `json:"year"`
	Month    int    `json:"month,omitempty"`
	ChurchID string `json:"churchId,omitempty"`
}

// ReportDocument carries a rendered report plus its media type.
type ReportDocument struct {
	ContentType string
	Body        []byte
}
