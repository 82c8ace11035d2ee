package reportservice

import (
	"log/slog"

	httpadapter "agendaviva/contexts/agenda/report-service/adapters/http"
	"agendaviva/contexts/agenda/report-service/application"
	"agendaviva/contexts/agenda/report-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Agenda ports.AgendaProvider
	PDF    ports.PDFRenderer
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			RenderCalendar: application.RenderCalendarUseCase{
				Agenda: deps.Agenda,
				Logger: deps.Logger,
			},
			ExportICS: application.ExportICSUseCase{
				Agenda: deps.Agenda,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			PDF:    deps.PDF,
			Logger: deps.Logger,
		},
	}
}
