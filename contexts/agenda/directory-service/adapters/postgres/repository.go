package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agendaviva/contexts/agenda/directory-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	"agendaviva/contexts/agenda/directory-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository implements the three directory aggregates on a shared
// connection. Uniqueness rides on the unique indexes declared in the
// models; violations map to the duplicate sentinels.
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

func (r *Repository) CreateChurch(ctx context.Context, church entities.Church) error {
	row := churchModelFromEntity(church)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateChurch
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateChurch(ctx context.Context, church entities.Church) error {
	row := churchModelFromEntity(church)
	result := r.db.WithContext(ctx).
		Model(&churchModel{}).
		Where("church_id = ?", strings.TrimSpace(church.ChurchID)).
		Updates(map[string]any{
			"name":        row.Name,
			"name_key":    row.NameKey,
			"address":     row.Address,
			"color_code":  row.ColorCode,
			"organs":      row.Organs,
			"departments": row.Departments,
			"updated_at":  row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateChurch
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrChurchNotFound
	}
	return nil
}

func (r *Repository) GetChurch(ctx context.Context, churchID string) (entities.Church, error) {
	var row churchModel
	err := r.db.WithContext(ctx).
		Where("church_id = ?", strings.TrimSpace(churchID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Church{}, domainerrors.ErrChurchNotFound
		}
		return entities.Church{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListChurches(ctx context.Context) ([]entities.Church, error) {
	var rows []churchModel
	if err := r.db.WithContext(ctx).Order("name_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Church, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteChurch(ctx context.Context, churchID string) error {
	result := r.db.WithContext(ctx).
		Where("church_id = ?", strings.TrimSpace(churchID)).
		Delete(&churchModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrChurchNotFound
	}
	return nil
}

func (r *Repository) CreateResource(ctx context.Context, resource entities.Resource) error {
	row := resourceModelFromEntity(resource)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateResource
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateResource(ctx context.Context, resource entities.Resource) error {
	row := resourceModelFromEntity(resource)
	result := r.db.WithContext(ctx).
		Model(&resourceModel{}).
		Where("resource_id = ?", strings.TrimSpace(resource.ResourceID)).
		Updates(map[string]any{
			"name":       row.Name,
			"name_key":   row.NameKey,
			"type":       row.Type,
			"available":  row.Available,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateResource
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrResourceNotFound
	}
	return nil
}

func (r *Repository) GetResource(ctx context.Context, resourceID string) (entities.Resource, error) {
	var row resourceModel
	err := r.db.WithContext(ctx).
		Where("resource_id = ?", strings.TrimSpace(resourceID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Resource{}, domainerrors.ErrResourceNotFound
		}
		return entities.Resource{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListResources(ctx context.Context) ([]entities.Resource, error) {
	var rows []resourceModel
	if err := r.db.WithContext(ctx).Order("name_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Resource, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteResource(ctx context.Context, resourceID string) error {
	result := r.db.WithContext(ctx).
		Where("resource_id = ?", strings.TrimSpace(resourceID)).
		Delete(&resourceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrResourceNotFound
	}
	return nil
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, user entities.User) error {
	row := userModelFromEntity(user)
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", strings.TrimSpace(user.UserID)).
		Updates(map[string]any{
			"name":          row.Name,
			"email":         row.Email,
			"password_hash": row.PasswordHash,
			"role":          row.Role,
			"church_id":     row.ChurchID,
			"birth_date":    row.BirthDate,
			"updated_at":    row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateEmail
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListUsers(ctx context.Context, filter ports.UserFilter) ([]entities.User, error) {
	tx := r.db.WithContext(ctx).Model(&userModel{})
	if churchID := strings.TrimSpace(filter.ChurchID); churchID != "" {
		tx = tx.Where("church_id = ?", churchID)
	}
	var rows []userModel
	if err := tx.Order("email ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Delete(&userModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type churchModel struct {
	ChurchID    string    `gorm:"column:church_id;primaryKey"`
	Name        string    `gorm:"column:name"`
	NameKey     string    `gorm:"column:name_key;uniqueIndex"`
	Address     string    `gorm:"column:address"`
	ColorCode   string    `gorm:"column:color_code"`
	Organs      []string  `gorm:"column:organs;serializer:json"`
	Departments []string  `gorm:"column:departments;serializer:json"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (churchModel) TableName() string {
	return "churches"
}

func (m churchModel) toEntity() entities.Church {
	return entities.Church{
		ChurchID:    m.ChurchID,
		Name:        m.Name,
		Address:     m.Address,
		ColorCode:   m.ColorCode,
		Organs:      m.Organs,
		Departments: m.Departments,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func churchModelFromEntity(church entities.Church) churchModel {
	return churchModel{
		ChurchID:    church.ChurchID,
		Name:        church.Name,
		NameKey:     entities.NormalizedName(church.Name),
		Address:     church.Address,
		ColorCode:   church.ColorCode,
		Organs:      church.Organs,
		Departments: church.Departments,
		CreatedAt:   church.CreatedAt.UTC(),
		UpdatedAt:   church.UpdatedAt.UTC(),
	}
}

type resourceModel struct {
	ResourceID string    `gorm:"column:resource_id;primaryKey"`
	Name       string    `gorm:"column:name"`
	NameKey    string    `gorm:"column:name_key;uniqueIndex"`
	Type       string    `gorm:"column:type"`
	Available  bool      `gorm:"column:available"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (resourceModel) TableName() string {
	return "resources"
}

func (m resourceModel) toEntity() entities.Resource {
	return entities.Resource{
		ResourceID: m.ResourceID,
		Name:       m.Name,
		Type:       entities.ResourceType(m.Type),
		Available:  m.Available,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func resourceModelFromEntity(resource entities.Resource) resourceModel {
	return resourceModel{
		ResourceID: resource.ResourceID,
		Name:       resource.Name,
		NameKey:    entities.NormalizedName(resource.Name),
		Type:       string(resource.Type),
		Available:  resource.Available,
		CreatedAt:  resource.CreatedAt.UTC(),
		UpdatedAt:  resource.UpdatedAt.UTC(),
	}
}

type userModel struct {
	UserID       string     `gorm:"column:user_id;primaryKey"`
	Name         string     `gorm:"column:name"`
	Email        string     `gorm:"column:email;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash"`
	Role         string     `gorm:"column:role"`
	ChurchID     string     `gorm:"column:church_id"`
	BirthDate    *time.Time `gorm:"column:birth_date"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		ChurchID:     m.ChurchID,
		BirthDate:    m.BirthDate,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func userModelFromEntity(user entities.User) userModel {
	return userModel{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		ChurchID:     user.ChurchID,
		BirthDate:    user.BirthDate,
		CreatedAt:    user.CreatedAt.UTC(),
		UpdatedAt:    user.UpdatedAt.UTC(),
	}
}
