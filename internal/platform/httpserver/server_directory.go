package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	directoryerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	directoryhttp "agendaviva/contexts/agenda/directory-service/transport/http"
)

func (s *Server) handleListChurches(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListChurchesHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateChurch(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.CreateChurchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.CreateChurchHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateChurch(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.UpdateChurchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.UpdateChurchHandler(r.Context(), r.PathValue("church_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteChurch(w http.ResponseWriter, r *http.Request) {
	if err := s.directory.Handler.DeleteChurchHandler(r.Context(), r.PathValue("church_id")); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListResourcesHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.CreateResourceHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateResource(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.UpdateResourceHandler(r.Context(), r.PathValue("resource_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := s.directory.Handler.DeleteResourceHandler(r.Context(), r.PathValue("resource_id")); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListUsersHandler(r.Context(), r.URL.Query().Get("church_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.CreateUserHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.UpdateUserHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.directory.Handler.DeleteUserHandler(r.Context(), r.PathValue("user_id")); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUsersBornToday(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.UsersBornTodayHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUsersBornInMonth(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.UsersBornInMonthHandler(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directoryerrors.ErrChurchNotFound),
		errors.Is(err, directoryerrors.ErrResourceNotFound),
		errors.Is(err, directoryerrors.ErrUserNotFound):
		writeDirectoryError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, directoryerrors.ErrDuplicateChurch),
		errors.Is(err, directoryerrors.ErrDuplicateResource),
		errors.Is(err, directoryerrors.ErrDuplicateEmail):
		writeDirectoryError(w, http.StatusConflict, "duplicate", err.Error())
	case errors.Is(err, directoryerrors.ErrInvalidInput),
		errors.Is(err, directoryerrors.ErrInvalidMonth):
		writeDirectoryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeDirectoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDirectoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, directoryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
