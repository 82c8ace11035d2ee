package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	schedulingerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
	schedulinghttp "agendaviva/contexts/agenda/scheduling-service/transport/http"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.scheduling.Handler.ListEventsHandler(
		r.Context(),
		query.Get("church_id"),
		query.Get("from"),
		query.Get("to"),
	)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req schedulinghttp.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.scheduling.Handler.CreateEventHandler(r.Context(), r.Header.Get("X-User-Id"), req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req schedulinghttp.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.scheduling.Handler.UpdateEventHandler(r.Context(), r.PathValue("event_id"), req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduling.Handler.DeleteEventHandler(r.Context(), r.PathValue("event_id")); err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAgenda(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	churchID := query.Get("church_id")

	if query.Get("year") != "" || query.Get("month") != "" {
		// a month query without a year reads against the current year
		year := time.Now().UTC().Year()
		if raw := query.Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeSchedulingError(w, http.StatusBadRequest, "invalid_year", "year must be an integer")
				return
			}
			year = parsed
		}
		month, err := strconv.Atoi(query.Get("month"))
		if err != nil {
			writeSchedulingError(w, http.StatusBadRequest, "invalid_month", "month must be an integer")
			return
		}
		resp, err := s.scheduling.Handler.AgendaMonthHandler(r.Context(), churchID, year, month)
		if err != nil {
			writeSchedulingDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp, err := s.scheduling.Handler.AgendaRangeHandler(
		r.Context(),
		churchID,
		query.Get("from"),
		query.Get("to"),
	)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeSchedulingDomainError(w http.ResponseWriter, err error) {
	var conflict schedulingerrors.ScheduleConflictError
	switch {
	case errors.As(err, &conflict):
		writeSchedulingError(w, http.StatusConflict, "schedule_conflict", conflict.Error())
	case errors.Is(err, schedulingerrors.ErrScheduleConflict):
		writeSchedulingError(w, http.StatusConflict, "schedule_conflict", err.Error())
	case errors.Is(err, schedulingerrors.ErrEventNotFound):
		writeSchedulingError(w, http.StatusNotFound, "event_not_found", err.Error())
	case errors.Is(err, schedulingerrors.ErrInvalidEventInput),
		errors.Is(err, schedulingerrors.ErrInvalidEventPeriod),
		errors.Is(err, schedulingerrors.ErrInvalidAgendaRange):
		writeSchedulingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeSchedulingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSchedulingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, schedulinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
