package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const (
	servicesTable    = "services"
	hairOptionsTable = "hair_options"

	foreignKeyViolation = "23503"
)

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"full_price",
	"deposit_type",
	"deposit_value",
	"has_hair_options",
	"image_url",
	"created_at",
}

var hairOptionColumns = []string{
	"id",
	"service_id",
	"name",
	"price_delta",
}

// Repository репозиторий каталога: услуги и опции волос
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices возвращает все услуги, отсортированные по названию
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(serviceDest(&s)...); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(serviceDest(&s)...)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %w", ErrScanRow, err)
	}

	return &s, nil
}

// CreateService создает услугу
func (r *Repository) CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(servicesTable).
		Columns(
			"id",
			"name",
			"description",
			"duration_minutes",
			"full_price",
			"deposit_type",
			"deposit_value",
			"has_hair_options",
			"image_url",
		).
		Values(
			s.ID,
			s.Name,
			s.Description,
			s.DurationMinutes,
			s.FullPrice,
			s.DepositType,
			s.DepositValue,
			s.HasHairOptions,
			s.ImageURL,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// UpdateService частично обновляет услугу и возвращает её новое состояние
func (r *Repository) UpdateService(ctx context.Context, id uuid.UUID, upd domain.ServiceUpdate) (*domain.Service, error) {
	if upd.IsEmpty() {
		return r.GetServiceByID(ctx, id)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(servicesTable).Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
	}
	if upd.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *upd.DurationMinutes)
	}
	if upd.FullPrice != nil {
		updateBuilder = updateBuilder.Set("full_price", *upd.FullPrice)
	}
	if upd.DepositType != nil {
		updateBuilder = updateBuilder.Set("deposit_type", *upd.DepositType)
	}
	if upd.DepositValue != nil {
		updateBuilder = updateBuilder.Set("deposit_value", *upd.DepositValue)
	}
	if upd.HasHairOptions != nil {
		updateBuilder = updateBuilder.Set("has_hair_options", *upd.HasHairOptions)
	}
	if upd.ImageURL != nil {
		updateBuilder = updateBuilder.Set("image_url", *upd.ImageURL)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(serviceColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(serviceDest(&s)...)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - execute update: %w", ErrExecQuery, err)
	}

	return &s, nil
}

// DeleteService удаляет услугу вместе с её опциями
func (r *Repository) DeleteService(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	optionsQuery, optionsArgs, err := psqlbuilder.Delete(hairOptionsTable).
		Where(squirrel.Eq{"service_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete options query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, optionsQuery, optionsArgs...); err != nil {
		return fmt.Errorf("%w: DeleteService - delete hair options: %w", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Delete(servicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return ErrServiceInUse
		}
		return fmt.Errorf("%w: DeleteService - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// ListHairOptions возвращает опции волос; если serviceID задан, только для этой услуги
func (r *Repository) ListHairOptions(ctx context.Context, serviceID *uuid.UUID) ([]*domain.HairOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hairOptionColumns...).
		From(hairOptionsTable).
		OrderBy("price_delta ASC", "name ASC")

	if serviceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *serviceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHairOptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHairOptions - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	options := make([]*domain.HairOption, 0)
	for rows.Next() {
		var o domain.HairOption
		if err := rows.Scan(hairOptionDest(&o)...); err != nil {
			return nil, fmt.Errorf("%w: ListHairOptions - scan hair option: %v", ErrScanRow, err)
		}
		options = append(options, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHairOptions - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}

// GetHairOptionByID получает опцию волос по ID
func (r *Repository) GetHairOptionByID(ctx context.Context, id uuid.UUID) (*domain.HairOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hairOptionColumns...).
		From(hairOptionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHairOptionByID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.HairOption
	err = executor.QueryRowContext(ctx, query, args...).Scan(hairOptionDest(&o)...)
	if err == sql.ErrNoRows {
		return nil, ErrHairOptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHairOptionByID - scan hair option: %w", ErrScanRow, err)
	}

	return &o, nil
}

// CreateHairOption создает опцию волос
// Несуществующая услуга приводит к ErrServiceNotFound
func (r *Repository) CreateHairOption(ctx context.Context, o *domain.HairOption) (*domain.HairOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(hairOptionsTable).
		Columns("id", "service_id", "name", "price_delta").
		Values(o.ID, o.ServiceID, o.Name, o.PriceDelta).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateHairOption - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: CreateHairOption - execute insert: %w", ErrExecQuery, err)
	}

	return o, nil
}

// UpdateHairOption частично обновляет опцию волос
func (r *Repository) UpdateHairOption(ctx context.Context, id uuid.UUID, upd domain.HairOptionUpdate) (*domain.HairOption, error) {
	if upd.IsEmpty() {
		return r.GetHairOptionByID(ctx, id)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(hairOptionsTable).Where(squirrel.Eq{"id": id})
	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.PriceDelta != nil {
		updateBuilder = updateBuilder.Set("price_delta", *upd.PriceDelta)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(hairOptionColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHairOption - build update query: %v", ErrBuildQuery, err)
	}

	var o domain.HairOption
	err = executor.QueryRowContext(ctx, query, args...).Scan(hairOptionDest(&o)...)
	if err == sql.ErrNoRows {
		return nil, ErrHairOptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateHairOption - execute update: %w", ErrExecQuery, err)
	}

	return &o, nil
}

// DeleteHairOption удаляет опцию волос
func (r *Repository) DeleteHairOption(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(hairOptionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteHairOption - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return ErrServiceInUse
		}
		return fmt.Errorf("%w: DeleteHairOption - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHairOption - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHairOptionNotFound
	}

	return nil
}

func serviceDest(s *domain.Service) []interface{} {
	return []interface{}{
		&s.ID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.FullPrice,
		&s.DepositType,
		&s.DepositValue,
		&s.HasHairOptions,
		&s.ImageURL,
		&s.CreatedAt,
	}
}

func hairOptionDest(o *domain.HairOption) []interface{} {
	return []interface{}{
		&o.ID,
		&o.ServiceID,
		&o.Name,
		&o.PriceDelta,
	}
}
