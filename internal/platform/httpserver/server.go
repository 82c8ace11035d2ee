package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	birthdayservice "agendaviva/contexts/agenda/birthday-service"
	directoryservice "agendaviva/contexts/agenda/directory-service"
	reportservice "agendaviva/contexts/agenda/report-service"
	schedulingservice "agendaviva/contexts/agenda/scheduling-service"
	_ "agendaviva/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	scheduling schedulingservice.Module
	birthdays  birthdayservice.Module
	directory  directoryservice.Module
	reports    reportservice.Module
}

func New(
	scheduling schedulingservice.Module,
	birthdays birthdayservice.Module,
	directory directoryservice.Module,
	reports reportservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		scheduling: scheduling,
		birthdays:  birthdays,
		directory:  directory,
		reports:    reports,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/ping", s.handlePing)

	s.mux.HandleFunc("GET /api/events", s.handleListEvents)
	s.mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	s.mux.HandleFunc("PUT /api/events/{event_id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/events/{event_id}", s.handleDeleteEvent)
	s.mux.HandleFunc("GET /api/agenda", s.handleAgenda)

	s.mux.HandleFunc("GET /api/birthdays", s.handleListBirthdays)
	s.mux.HandleFunc("POST /api/birthdays", s.handleCreateBirthday)
	s.mux.HandleFunc("PUT /api/birthdays/{birthday_id}", s.handleUpdateBirthday)
	s.mux.HandleFunc("DELETE /api/birthdays/{birthday_id}", s.handleDeleteBirthday)
	s.mux.HandleFunc("GET /api/birthdays/month", s.handleBirthdaysInMonth)
	s.mux.HandleFunc("GET /api/birthdays/upcoming", s.handleUpcomingBirthdays)

	s.mux.HandleFunc("GET /api/churches", s.handleListChurches)
	s.mux.HandleFunc("POST /api/churches", s.handleCreateChurch)
	s.mux.HandleFunc("PUT /api/churches/{church_id}", s.handleUpdateChurch)
	s.mux.HandleFunc("DELETE /api/churches/{church_id}", s.handleDeleteChurch)

	s.mux.HandleFunc("GET /api/resources", s.handleListResources)
	s.mux.HandleFunc("POST /api/resources", s.handleCreateResource)
	s.mux.HandleFunc("PUT /api/resources/{resource_id}", s.handleUpdateResource)
	s.mux.HandleFunc("DELETE /api/resources/{resource_id}", s.handleDeleteResource)

	s.mux.HandleFunc("GET /api/users", s.handleListUsers)
	s.mux.HandleFunc("POST /api/users", s.handleCreateUser)
	s.mux.HandleFunc("PUT /api/users/{user_id}", s.handleUpdateUser)
	s.mux.HandleFunc("DELETE /api/users/{user_id}", s.handleDeleteUser)
	s.mux.HandleFunc("GET /api/users/birthdays/today", s.handleUsersBornToday)
	s.mux.HandleFunc("GET /api/users/birthdays/month", s.handleUsersBornInMonth)

	s.mux.HandleFunc("POST /api/reports/calendar", s.handleCalendarReport)
	s.mux.HandleFunc("GET /api/calendar.ics", s.handleCalendarFeed)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
