package birthdayservice

import (
	"log/slog"

	httpadapter "agendaviva/contexts/agenda/birthday-service/adapters/http"
	"agendaviva/contexts/agenda/birthday-service/adapters/memory"
	postgresadapter "agendaviva/contexts/agenda/birthday-service/adapters/postgres"
	"agendaviva/contexts/agenda/birthday-service/application/commands"
	"agendaviva/contexts/agenda/birthday-service/application/queries"
	"agendaviva/contexts/agenda/birthday-service/application/workers"
	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

type Module struct {
	Handler         httpadapter.Handler
	ReminderScanner workers.ReminderScanner
	Birthdays       ports.BirthdayRepository
	Store           *memory.Store
}

type Dependencies struct {
	Birthdays   ports.BirthdayRepository
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createBirthday := commands.CreateBirthdayUseCase{
		Birthdays:   deps.Birthdays,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateBirthday := commands.UpdateBirthdayUseCase{
		Birthdays: deps.Birthdays,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	deleteBirthday := commands.DeleteBirthdayUseCase{
		Birthdays: deps.Birthdays,
		Logger:    deps.Logger,
	}
	listBirthdays := queries.ListBirthdaysUseCase{
		Birthdays: deps.Birthdays,
		Logger:    deps.Logger,
	}
	birthdaysInMonth := queries.BirthdaysInMonthUseCase{
		Birthdays: deps.Birthdays,
		Logger:    deps.Logger,
	}
	upcoming := queries.UpcomingBirthdaysUseCase{
		Birthdays: deps.Birthdays,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateBirthday:   createBirthday,
			UpdateBirthday:   updateBirthday,
			DeleteBirthday:   deleteBirthday,
			ListBirthdays:    listBirthdays,
			BirthdaysInMonth: birthdaysInMonth,
			Upcoming:         upcoming,
			Logger:           deps.Logger,
		},
		ReminderScanner: workers.ReminderScanner{
			Birthdays:   deps.Birthdays,
			Publisher:   deps.Publisher,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		Birthdays: deps.Birthdays,
	}
}

func NewInMemoryModule(seed []entities.Birthday, publisher ports.EventPublisher, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Birthdays:   store,
		Publisher:   publisher,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
		Logger:      logger,
	})
	module.Store = store
	return module
}
