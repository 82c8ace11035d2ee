package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
	"agendaviva/contexts/agenda/scheduling-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateEvent(ctx context.Context, event entities.Event) error {
	row := eventModelFromEntity(event)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidEventInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateEvent(ctx context.Context, event entities.Event) error {
	row := eventModelFromEntity(event)
	result := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("event_id = ?", strings.TrimSpace(event.EventID)).
		Updates(map[string]any{
			"title":         row.Title,
			"description":   row.Description,
			"responsible":   row.Responsible,
			"starts_at":     row.StartsAt,
			"ends_at":       row.EndsAt,
			"church_id":     row.ChurchID,
			"resource_id":   row.ResourceID,
			"all_day":       row.AllDay,
			"department_id": row.DepartmentID,
			"organ_id":      row.OrganID,
			"updated_at":    row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEventNotFound
	}
	return nil
}

func (r *Repository) GetEvent(ctx context.Context, eventID string) (entities.Event, error) {
	var row eventModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", strings.TrimSpace(eventID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Event{}, domainerrors.ErrEventNotFound
		}
		return entities.Event{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListEvents(ctx context.Context, filter ports.EventFilter) ([]entities.Event, error) {
	tx := r.db.WithContext(ctx).Model(&eventModel{})
	if churchID := strings.TrimSpace(filter.ChurchID); churchID != "" {
		tx = tx.Where("church_id = ?", churchID)
	}
	if filter.From != nil && filter.To != nil {
		tx = tx.Where("starts_at < ? AND ends_at > ?", filter.To.UTC(), filter.From.UTC())
	}

	var rows []eventModel
	if err := tx.Order("starts_at ASC, event_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Event, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteEvent(ctx context.Context, eventID string) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ?", strings.TrimSpace(eventID)).
		Delete(&eventModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEventNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type eventModel struct {
	EventID      string    `gorm:"column:event_id;primaryKey"`
	Title        string    `gorm:"column:title"`
	Description  string    `gorm:"column:description"`
	Responsible  string    `gorm:"column:responsible"`
	StartsAt     time.Time `gorm:"column:starts_at"`
	EndsAt       time.Time `gorm:"column:ends_at"`
	CreatedBy    string    `gorm:"column:created_by"`
	ChurchID     string    `gorm:"column:church_id"`
	ResourceID   string    `gorm:"column:resource_id"`
	AllDay       bool      `gorm:"column:all_day"`
	DepartmentID string    `gorm:"column:department_id"`
	OrganID      string    `gorm:"column:organ_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string {
	return "events"
}

func (m eventModel) toEntity() entities.Event {
	return entities.Event{
		EventID:      m.EventID,
		Title:        m.Title,
		Description:  m.Description,
		Responsible:  m.Responsible,
		StartsAt:     m.StartsAt.UTC(),
		EndsAt:       m.EndsAt.UTC(),
		CreatedBy:    m.CreatedBy,
		ChurchID:     m.ChurchID,
		ResourceID:   m.ResourceID,
		AllDay:       m.AllDay,
		DepartmentID: m.DepartmentID,
		OrganID:      m.OrganID,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func eventModelFromEntity(event entities.Event) eventModel {
	return eventModel{
		EventID:      event.EventID,
		Title:        event.Title,
		Description:  event.Description,
		Responsible:  event.Responsible,
		StartsAt:     event.StartsAt.UTC(),
		EndsAt:       event.EndsAt.UTC(),
		CreatedBy:    event.CreatedBy,
		ChurchID:     event.ChurchID,
		ResourceID:   event.ResourceID,
		AllDay:       event.AllDay,
		DepartmentID: event.DepartmentID,
		OrganID:      event.OrganID,
		CreatedAt:    event.CreatedAt.UTC(),
		UpdatedAt:    event.UpdatedAt.UTC(),
	}
}
