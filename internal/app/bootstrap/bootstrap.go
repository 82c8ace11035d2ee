package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	birthdayservice "agendaviva/contexts/agenda/birthday-service"
	birthdaymemory "agendaviva/contexts/agenda/birthday-service/adapters/memory"
	birthdaypostgres "agendaviva/contexts/agenda/birthday-service/adapters/postgres"
	birthdayworkers "agendaviva/contexts/agenda/birthday-service/application/workers"
	birthdayports "agendaviva/contexts/agenda/birthday-service/ports"
	directoryservice "agendaviva/contexts/agenda/directory-service"
	directorypostgres "agendaviva/contexts/agenda/directory-service/adapters/postgres"
	"agendaviva/contexts/agenda/directory-service/adapters/security"
	directoryentities "agendaviva/contexts/agenda/directory-service/domain/entities"
	reportservice "agendaviva/contexts/agenda/report-service"
	"agendaviva/contexts/agenda/report-service/adapters/chromium"
	reportports "agendaviva/contexts/agenda/report-service/ports"
	schedulingservice "agendaviva/contexts/agenda/scheduling-service"
	schedulingpostgres "agendaviva/contexts/agenda/scheduling-service/adapters/postgres"
	schedulingqueries "agendaviva/contexts/agenda/scheduling-service/application/queries"
	schedulingports "agendaviva/contexts/agenda/scheduling-service/ports"
	"agendaviva/internal/platform/config"
	"agendaviva/internal/platform/db"
	"agendaviva/internal/platform/httpserver"
	"agendaviva/internal/platform/messaging"
	"agendaviva/internal/shared/events"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres *db.Postgres
	bus      *messaging.Bus
	scanner  birthdayworkers.ReminderScanner
	schedule string
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	bus := messaging.NewBus(logger)

	var app *APIApp
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		app = buildInMemoryAPI(cfg, bus, logger)
	} else {
		app, err = buildPostgresAPI(cfg, bus, logger)
		if err != nil {
			return nil, err
		}
	}
	return app, nil
}

func buildInMemoryAPI(cfg config.Config, bus *messaging.Bus, logger *slog.Logger) *APIApp {
	directory := directoryservice.NewInMemoryModule(logger)
	birthdays := birthdayservice.NewInMemoryModule(nil, bus, logger)
	scheduling := schedulingservice.NewInMemoryModule(nil, birthdayProvider{birthdays.Birthdays}, logger)
	reports := buildReports(cfg, scheduling, logger)

	if cfg.SeedDemoData {
		seedDemoData(directory, logger)
	}

	server := httpserver.New(scheduling, birthdays, directory, reports, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server: server,
		logger: logger,
	}
}

func buildPostgresAPI(cfg config.Config, bus *messaging.Bus, logger *slog.Logger) (*APIApp, error) {
	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	birthdayRepo := birthdaypostgres.NewRepository(pg.DB, logger)
	birthdays := birthdayservice.NewModule(birthdayservice.Dependencies{
		Birthdays:   birthdayRepo,
		Publisher:   bus,
		Clock:       birthdaypostgres.SystemClock{},
		IDGenerator: birthdaypostgres.UUIDGenerator{},
		Logger:      logger,
	})

	scheduling := schedulingservice.NewModule(schedulingservice.Dependencies{
		Events:      schedulingpostgres.NewRepository(pg.DB, logger),
		Birthdays:   birthdayProvider{birthdayRepo},
		Clock:       schedulingpostgres.SystemClock{},
		IDGenerator: schedulingpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	directoryRepo := directorypostgres.NewRepository(pg.DB, logger)
	directory := directoryservice.NewModule(directoryservice.Dependencies{
		Churches:    directoryRepo,
		Resources:   directoryRepo,
		Users:       directoryRepo,
		Hasher:      security.BcryptHasher{},
		Clock:       directorypostgres.SystemClock{},
		IDGenerator: directorypostgres.UUIDGenerator{},
		Logger:      logger,
	})

	reports := buildReports(cfg, scheduling, logger)

	server := httpserver.New(scheduling, birthdays, directory, reports, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func buildReports(cfg config.Config, scheduling schedulingservice.Module, logger *slog.Logger) reportservice.Module {
	var pdf reportports.PDFRenderer
	if strings.TrimSpace(cfg.ChromiumPath) != "" {
		pdf = chromium.Renderer{ExecPath: cfg.ChromiumPath}
	}
	return reportservice.NewModule(reportservice.Dependencies{
		Agenda: agendaProvider{scheduling.Agenda},
		PDF:    pdf,
		Clock:  schedulingpostgres.SystemClock{},
		Logger: logger,
	})
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	bus := messaging.NewBus(logger)

	var pg *db.Postgres
	var birthdayRepo birthdayports.BirthdayRepository
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		birthdayRepo = birthdaymemory.NewStore(nil)
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		birthdayRepo = birthdaypostgres.NewRepository(pg.DB, logger)
	}

	return &WorkerApp{
		postgres: pg,
		bus:      bus,
		scanner: birthdayworkers.ReminderScanner{
			Birthdays:   birthdayRepo,
			Publisher:   bus,
			Clock:       zonedClock{location: resolveLocation(cfg.Timezone, logger)},
			IDGenerator: birthdaypostgres.UUIDGenerator{},
			Logger:      logger,
		},
		schedule: cfg.ReminderCron,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.bus.Subscribe(ctx, birthdayworkers.ReminderTopic, w.logReminder); err != nil {
		return err
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(w.schedule, func() {
		if err := w.scanner.RunOnce(ctx); err != nil {
			w.logger.Error("reminder sweep failed",
				"event", "bootstrap_reminder_sweep_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"schedule", w.schedule,
	)

	// One sweep at startup so a restart never silently skips the day.
	if err := w.scanner.RunOnce(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) logReminder(_ context.Context, event events.Envelope) error {
	w.logger.Info("birthday reminder due",
		"event", "birthday_reminder_due",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"entity_id", event.EntityID,
	)
	return nil
}

// birthdayProvider projects the birthday book into the scheduling
// aggregator without coupling the two contexts directly.
type birthdayProvider struct {
	birthdays birthdayports.BirthdayRepository
}

func (p birthdayProvider) BirthdaySnapshots(ctx context.Context, churchID string) ([]schedulingports.BirthdaySnapshot, error) {
	items, err := p.birthdays.ListBirthdays(ctx, birthdayports.BirthdayFilter{ChurchID: churchID})
	if err != nil {
		return nil, err
	}
	snapshots := make([]schedulingports.BirthdaySnapshot, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, schedulingports.BirthdaySnapshot{
			BirthdayID:   item.BirthdayID,
			Name:         item.Name,
			Day:          item.Day,
			Month:        item.Month,
			ChurchID:     item.ChurchID,
			DepartmentID: item.DepartmentID,
			OrganID:      item.OrganID,
		})
	}
	return snapshots, nil
}

// agendaProvider feeds the report service with the merged occurrence
// stream produced by the scheduling aggregator.
type agendaProvider struct {
	agenda schedulingqueries.AgendaUseCase
}

func (p agendaProvider) OccurrencesInRange(ctx context.Context, from, to time.Time, churchID string) ([]reportports.AgendaItem, error) {
	occurrences, err := p.agenda.Execute(ctx, schedulingqueries.AgendaQuery{
		From:     from,
		To:       to,
		ChurchID: churchID,
	})
	if err != nil {
		return nil, err
	}
	items := make([]reportports.AgendaItem, 0, len(occurrences))
	for _, occurrence := range occurrences {
		items = append(items, reportports.AgendaItem{
			Kind:         string(occurrence.Kind),
			Date:         occurrence.Date,
			SourceID:     occurrence.SourceID,
			Label:        occurrence.Label,
			ChurchID:     occurrence.ChurchID,
			DepartmentID: occurrence.DepartmentID,
			OrganID:      occurrence.OrganID,
			StartsAt:     occurrence.StartsAt,
			EndsAt:       occurrence.EndsAt,
			AllDay:       occurrence.AllDay,
		})
	}
	return items, nil
}

type zonedClock struct {
	location *time.Location
}

func (c zonedClock) Now() time.Time {
	return time.Now().In(c.location)
}

func resolveLocation(name string, logger *slog.Logger) *time.Location {
	if strings.TrimSpace(name) == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("unknown timezone, using UTC",
			"event", "bootstrap_timezone_fallback",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"timezone", name,
		)
		return time.UTC
	}
	return location
}

// seedDemoData mirrors the first-run seed the app historically shipped
// with: one central church, three bookable resources, three accounts.
func seedDemoData(directory directoryservice.Module, logger *slog.Logger) {
	ctx := context.Background()
	store := directory.Store
	if store == nil {
		return
	}
	now := time.Now().UTC()
	hasher := security.BcryptHasher{}

	church := directoryentities.Church{
		ChurchID:    uuid.NewString(),
		Name:        "Igreja Central",
		Address:     "Rua Principal, 100",
		ColorCode:   "#1a6b3f",
		Organs:      []string{"Coral", "Orquestra"},
		Departments: []string{"Jovens", "Infantil"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := store.CreateChurch(ctx, church); err != nil {
		logger.Warn("seed church failed", "error", err.Error())
		return
	}

	resources := []directoryentities.Resource{
		{ResourceID: uuid.NewString(), Name: "Salão Principal", Type: directoryentities.ResourceTypeSpace, Available: true, CreatedAt: now, UpdatedAt: now},
		{ResourceID: uuid.NewString(), Name: "Sala de Reuniões", Type: directoryentities.ResourceTypeSpace, Available: true, CreatedAt: now, UpdatedAt: now},
		{ResourceID: uuid.NewString(), Name: "Projetor", Type: directoryentities.ResourceTypeEquipment, Available: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, resource := range resources {
		if err := store.CreateResource(ctx, resource); err != nil {
			logger.Warn("seed resource failed", "error", err.Error())
		}
	}

	accounts := []struct {
		name  string
		email string
		role  directoryentities.Role
	}{
		{"Administrador", "admin@agendaviva.local", directoryentities.RoleAdmin},
		{"Líder de Louvor", "lider@agendaviva.local", directoryentities.RoleLeader},
		{"Membro", "membro@agendaviva.local", directoryentities.RoleMember},
	}
	for _, account := range accounts {
		hash, err := hasher.Hash("mudar123")
		if err != nil {
			logger.Warn("seed user hash failed", "error", err.Error())
			continue
		}
		user := directoryentities.User{
			UserID:       uuid.NewString(),
			Name:         account.name,
			Email:        account.email,
			PasswordHash: hash,
			Role:         account.role,
			ChurchID:     church.ChurchID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.CreateUser(ctx, user); err != nil {
			logger.Warn("seed user failed", "error", err.Error())
		}
	}

	logger.Info("demo data seeded",
		"event", "bootstrap_demo_data_seeded",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"church_id", church.ChurchID,
	)
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
