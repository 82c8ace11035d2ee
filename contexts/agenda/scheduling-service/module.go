package schedulingservice

import (
	"log/slog"

	httpadapter "agendaviva/contexts/agenda/scheduling-service/adapters/http"
	"agendaviva/contexts/agenda/scheduling-service/adapters/memory"
	postgresadapter "agendaviva/contexts/agenda/scheduling-service/adapters/postgres"
	application "agendaviva/contexts/agenda/scheduling-service/application"
	"agendaviva/contexts/agenda/scheduling-service/application/commands"
	"agendaviva/contexts/agenda/scheduling-service/application/queries"
	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
	"agendaviva/contexts/agenda/scheduling-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Agenda  queries.AgendaUseCase
	Store   *memory.Store
}

type Dependencies struct {
	Events      ports.EventRepository
	Birthdays   ports.BirthdayProvider
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	booking := application.NewBookingLock()

	createEvent := commands.CreateEventUseCase{
		Events:      deps.Events,
		Booking:     booking,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateEvent := commands.UpdateEventUseCase{
		Events:  deps.Events,
		Booking: booking,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	deleteEvent := commands.DeleteEventUseCase{
		Events: deps.Events,
		Logger: deps.Logger,
	}
	listEvents := queries.ListEventsUseCase{
		Events: deps.Events,
		Logger: deps.Logger,
	}
	agenda := queries.AgendaUseCase{
		Events:    deps.Events,
		Birthdays: deps.Birthdays,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateEvent: createEvent,
			UpdateEvent: updateEvent,
			DeleteEvent: deleteEvent,
			ListEvents:  listEvents,
			Agenda:      agenda,
			Logger:      deps.Logger,
		},
		Agenda: agenda,
	}
}

func NewInMemoryModule(seed []entities.Event, birthdays ports.BirthdayProvider, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Events:      store,
		Birthdays:   birthdays,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
		Logger:      logger,
	})
	module.Store = store
	return module
}
