package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
	"agendaviva/contexts/agenda/birthday-service/ports"

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

func (r *Repository) CreateBirthday(ctx context.Context, birthday entities.Birthday) error {
	row := birthdayModelFromEntity(birthday)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidBirthdayInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateBirthday(ctx context.Context, birthday entities.Birthday) error {
	row := birthdayModelFromEntity(birthday)
	result := r.db.WithContext(ctx).
		Model(&birthdayModel{}).
		Where("birthday_id = ?", strings.TrimSpace(birthday.BirthdayID)).
		Updates(map[string]any{
			"name":          row.Name,
			"day":           row.Day,
			"month":         row.Month,
			"birth_year":    row.BirthYear,
			"church_id":     row.ChurchID,
			"notes":         row.Notes,
			"department_id": row.DepartmentID,
			"organ_id":      row.OrganID,
			"updated_at":    row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBirthdayNotFound
	}
	return nil
}

func (r *Repository) GetBirthday(ctx context.Context, birthdayID string) (entities.Birthday, error) {
	var row birthdayModel
	err := r.db.WithContext(ctx).
		Where("birthday_id = ?", strings.TrimSpace(birthdayID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Birthday{}, domainerrors.ErrBirthdayNotFound
		}
		return entities.Birthday{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListBirthdays(ctx context.Context, filter ports.BirthdayFilter) ([]entities.Birthday, error) {
	tx := r.db.WithContext(ctx).Model(&birthdayModel{})
	if churchID := strings.TrimSpace(filter.ChurchID); churchID != "" {
		tx = tx.Where("church_id = ?", churchID)
	}
	if filter.Month != 0 {
		tx = tx.Where("month = ?", filter.Month)
	}

	var rows []birthdayModel
	if err := tx.Order("month ASC, day ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Birthday, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteBirthday(ctx context.Context, birthdayID string) error {
	result := r.db.WithContext(ctx).
		Where("birthday_id = ?", strings.TrimSpace(birthdayID)).
		Delete(&birthdayModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBirthdayNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type birthdayModel struct {
	BirthdayID   string    `gorm:"column:birthday_id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Day          int       `gorm:"column:day"`
	Month        int       `gorm:"column:month"`
	BirthYear    *int      `gorm:"column:birth_year"`
	ChurchID     string    `gorm:"column:church_id"`
	Notes        string    `gorm:"column:notes"`
	CreatedBy    string    `gorm:"column:created_by"`
	DepartmentID string    `gorm:"column:department_id"`
	OrganID      string    `gorm:"column:organ_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (birthdayModel) TableName() string {
	return "birthdays"
}

func (m birthdayModel) toEntity() entities.Birthday {
	return entities.Birthday{
		BirthdayID:   m.BirthdayID,
		Name:         m.Name,
		Day:          m.Day,
		Month:        m.Month,
		BirthYear:    m.BirthYear,
		ChurchID:     m.ChurchID,
		Notes:        m.Notes,
		CreatedBy:    m.CreatedBy,
		DepartmentID: m.DepartmentID,
		OrganID:      m.OrganID,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func birthdayModelFromEntity(birthday entities.Birthday) birthdayModel {
	return birthdayModel{
		BirthdayID:   birthday.BirthdayID,
		Name:         birthday.Name,
		Day:          birthday.Day,
		Month:        birthday.Month,
		BirthYear:    birthday.BirthYear,
		ChurchID:     birthday.ChurchID,
		Notes:        birthday.Notes,
		CreatedBy:    birthday.CreatedBy,
		DepartmentID: birthday.DepartmentID,
		OrganID:      birthday.OrganID,
		CreatedAt:    birthday.CreatedAt.UTC(),
		UpdatedAt:    birthday.UpdatedAt.UTC(),
	}
}
