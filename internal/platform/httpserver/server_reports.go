package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	reporterrors "agendaviva/contexts/agenda/report-service/domain/errors"
	reporthttp "agendaviva/contexts/agenda/report-service/transport/http"
)

func (s *Server) handleCalendarReport(w http.ResponseWriter, r *http.Request) {
	var req reporthttp.CalendarReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReportError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	doc, err := s.reports.Handler.CalendarReportHandler(r.Context(), req)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeDocument(w, doc)
}

func (s *Server) handleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	doc, err := s.reports.Handler.CalendarFeedHandler(
		r.Context(),
		query.Get("from"),
		query.Get("to"),
		query.Get("church_id"),
	)
	if err != nil {
		writeReportDomainError(w, err)
		return
	}
	writeDocument(w, doc)
}

func writeDocument(w http.ResponseWriter, doc reporthttp.ReportDocument) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}

func writeReportDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporterrors.ErrInvalidReportRequest):
		writeReportError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, reporterrors.ErrPDFUnavailable):
		writeReportError(w, http.StatusServiceUnavailable, "pdf_unavailable", err.Error())
	default:
		writeReportError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeReportError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reporthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
