package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	birthdayerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
	birthdayhttp "agendaviva/contexts/agenda/birthday-service/transport/http"
)

func (s *Server) handleListBirthdays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.birthdays.Handler.ListBirthdaysHandler(
		r.Context(),
		query.Get("church_id"),
		query.Get("month"),
	)
	if err != nil {
		writeBirthdayDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateBirthday(w http.ResponseWriter, r *http.Request) {
	var req birthdayhttp.CreateBirthdayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBirthdayError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.birthdays.Handler.CreateBirthdayHandler(r.Context(), r.Header.Get("X-User-Id"), req)
	if err != nil {
		writeBirthdayDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateBirthday(w http.ResponseWriter, r *http.Request) {
	var req birthdayhttp.UpdateBirthdayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBirthdayError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.birthdays.Handler.UpdateBirthdayHandler(r.Context(), r.PathValue("birthday_id"), req)
	if err != nil {
		writeBirthdayDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteBirthday(w http.ResponseWriter, r *http.Request) {
	if err := s.birthdays.Handler.DeleteBirthdayHandler(r.Context(), r.PathValue("birthday_id")); err != nil {
		writeBirthdayDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBirthdaysInMonth(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.birthdays.Handler.BirthdaysInMonthHandler(
		r.Context(),
		query.Get("church_id"),
		query.Get("month"),
	)
	if err != nil {
		writeBirthdayDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.birthdays.Handler.UpcomingBirthdaysHandler(
		r.Context(),
		query.Get("church_id"),
		query.Get("days"),
	)
	if err != nil {
		writeBirthdayDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeBirthdayDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, birthdayerrors.ErrBirthdayNotFound):
		writeBirthdayError(w, http.StatusNotFound, "birthday_not_found", err.Error())
	case errors.Is(err, birthdayerrors.ErrInvalidBirthdayInput),
		errors.Is(err, birthdayerrors.ErrInvalidBirthdayDate),
		errors.Is(err, birthdayerrors.ErrInvalidMonth):
		writeBirthdayError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeBirthdayError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeBirthdayError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, birthdayhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
