package directoryservice

import (
	"log/slog"

	httpadapter "agendaviva/contexts/agenda/directory-service/adapters/http"
	"agendaviva/contexts/agenda/directory-service/adapters/memory"
	postgresadapter "agendaviva/contexts/agenda/directory-service/adapters/postgres"
	"agendaviva/contexts/agenda/directory-service/adapters/security"
	"agendaviva/contexts/agenda/directory-service/application/commands"
	"agendaviva/contexts/agenda/directory-service/application/queries"
	"agendaviva/contexts/agenda/directory-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Churches    ports.ChurchRepository
	Resources   ports.ResourceRepository
	Users       ports.UserRepository
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			CreateChurch: commands.CreateChurchUseCase{
				Churches:    deps.Churches,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			UpdateChurch: commands.UpdateChurchUseCase{
				Churches: deps.Churches,
				Clock:    deps.Clock,
				Logger:   deps.Logger,
			},
			DeleteChurch: commands.DeleteChurchUseCase{
				Churches: deps.Churches,
				Logger:   deps.Logger,
			},
			CreateResource: commands.CreateResourceUseCase{
				Resources:   deps.Resources,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			UpdateResource: commands.UpdateResourceUseCase{
				Resources: deps.Resources,
				Clock:     deps.Clock,
				Logger:    deps.Logger,
			},
			DeleteResource: commands.DeleteResourceUseCase{
				Resources: deps.Resources,
				Logger:    deps.Logger,
			},
			CreateUser: commands.CreateUserUseCase{
				Users:       deps.Users,
				Hasher:      deps.Hasher,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			UpdateUser: commands.UpdateUserUseCase{
				Users:  deps.Users,
				Hasher: deps.Hasher,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			DeleteUser: commands.DeleteUserUseCase{
				Users:  deps.Users,
				Logger: deps.Logger,
			},
			ListChurches: queries.ListChurchesUseCase{
				Churches: deps.Churches,
				Logger:   deps.Logger,
			},
			ListResources: queries.ListResourcesUseCase{
				Resources: deps.Resources,
				Logger:    deps.Logger,
			},
			ListUsers: queries.ListUsersUseCase{
				Users:  deps.Users,
				Logger: deps.Logger,
			},
			UserBirthdays: queries.UserBirthdaysUseCase{
				Users:  deps.Users,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Churches:    store,
		Resources:   store,
		Users:       store,
		Hasher:      security.BcryptHasher{},
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
		Logger:      logger,
	})
	module.Store = store
	return module
}
