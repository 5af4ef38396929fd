package confirmed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const (
	table = "confirmed_bookings"

	exclusionViolation = "23P01"
	uniqueViolation    = "23505"
)

// Repository репозиторий подтверждённых бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRanges возвращает интервалы бронирований, начинающихся в [from, to)
func (r *Repository) GetRanges(ctx context.Context, from, to time.Time) ([]domain.TimeRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time", "end_time").
		From(table).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRanges - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.TimeRange, 0)
	for rows.Next() {
		var tr domain.TimeRange
		if err := rows.Scan(&tr.Start, &tr.End); err != nil {
			return nil, fmt.Errorf("%w: GetRanges - scan range: %v", ErrScanRow, err)
		}
		ranges = append(ranges, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// HasOverlap проверяет, пересекается ли интервал с подтверждённым бронированием
// Используется полуоткрытая проверка: start_time < end AND end_time > start
func (r *Repository) HasOverlap(ctx context.Context, tr domain.TimeRange) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Lt{"start_time": tr.End}).
		Where(squirrel.Gt{"end_time": tr.Start}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasOverlap - scan result: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Create сохраняет подтверждённое бронирование
// Нарушение exclusion constraint (пересечение) или уникальности заявки возвращает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, c *domain.ConfirmedBooking) (*domain.ConfirmedBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "booking_request_id", "start_time", "end_time").
		Values(c.ID, c.BookingRequestID, c.StartTime, c.EndTime).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == exclusionViolation || pqErr.Code == uniqueViolation) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return c, nil
}

// DeleteByBookingRequestID освобождает интервал подтверждённой заявки
// Возвращает количество удалённых строк (0, если заявка не была подтверждена)
func (r *Repository) DeleteByBookingRequestID(ctx context.Context, bookingRequestID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"booking_request_id": bookingRequestID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingRequestID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingRequestID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingRequestID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
