package booking

import (
	"context"
	"database/sql"
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

const table = "booking_requests"

var columns = []string{
	"id",
	"customer_name",
	"email",
	"phone",
	"service_id",
	"hair_option_id",
	"start_time",
	"end_time",
	"payment_choice",
	"amount_due",
	"juice_preference",
	"status",
	"reference",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
// ID и референс формирует вызывающий код, чтобы сохранить заявку одним запросом
func (r *Repository) Create(ctx context.Context, b *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"customer_name",
			"email",
			"phone",
			"service_id",
			"hair_option_id",
			"start_time",
			"end_time",
			"payment_choice",
			"amount_due",
			"juice_preference",
			"status",
			"reference",
		).
		Values(
			b.ID,
			b.CustomerName,
			b.Email,
			b.Phone,
			b.ServiceID,
			b.HairOptionID,
			b.StartTime,
			b.EndTime,
			b.PaymentChoice,
			b.AmountDue,
			b.JuicePreference,
			b.Status,
			b.Reference,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы смена статуса была атомарной
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking request: %w", ErrScanRow, err)
	}

	return b, nil
}

// GetPendingRanges возвращает интервалы заявок, ожидающих подтверждения, начинающихся в [from, to)
func (r *Repository) GetPendingRanges(ctx context.Context, from, to time.Time) ([]domain.TimeRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.PendingStatuses))
	for i, s := range domain.PendingStatuses {
		statuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("start_time", "end_time").
		From(table).
		Where(squirrel.Eq{"status": statuses}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingRanges - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.TimeRange, 0)
	for rows.Next() {
		var tr domain.TimeRange
		if err := rows.Scan(&tr.Start, &tr.End); err != nil {
			return nil, fmt.Errorf("%w: GetPendingRanges - scan range: %v", ErrScanRow, err)
		}
		ranges = append(ranges, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPendingRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// ListWithDetails получает заявки с названиями услуги и опции, сначала новые
// Чеки об оплате сюда не входят, их догружает сервис
func (r *Repository) ListWithDetails(ctx context.Context, filter domain.BookingRequestsFilter) ([]*domain.BookingRequestDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectColumns := make([]string, 0, len(columns)+4)
	for _, c := range columns {
		selectColumns = append(selectColumns, "b."+c)
	}
	selectColumns = append(selectColumns,
		"COALESCE(s.name, '')",
		"COALESCE(s.duration_minutes, 0)",
		"COALESCE(s.full_price, 0)",
		"h.name",
	)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(table + " b").
		LeftJoin("services s ON s.id = b.service_id").
		LeftJoin("hair_options h ON h.id = b.hair_option_id").
		OrderBy("b.created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingRequestDetails, 0)
	for rows.Next() {
		var d domain.BookingRequestDetails
		dest := append(bookingDest(&d.BookingRequest),
			&d.ServiceName,
			&d.ServiceDurationMinutes,
			&d.ServiceFullPrice,
			&d.HairOptionName,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: ListWithDetails - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CancelStaleRequested отменяет заявки в статусе requested, созданные раньше createdBefore
// Заявки с загруженным чеком не трогаются
func (r *Repository) CancelStaleRequested(ctx context.Context, createdBefore time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusRequested}).
		Where(squirrel.Lt{"created_at": createdBefore}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelStaleRequested - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelStaleRequested - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelStaleRequested - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func bookingDest(b *domain.BookingRequest) []interface{} {
	return []interface{}{
		&b.ID,
		&b.CustomerName,
		&b.Email,
		&b.Phone,
		&b.ServiceID,
		&b.HairOptionID,
		&b.StartTime,
		&b.EndTime,
		&b.PaymentChoice,
		&b.AmountDue,
		&b.JuicePreference,
		&b.Status,
		&b.Reference,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBooking(row *sql.Row) (*domain.BookingRequest, error) {
	var b domain.BookingRequest
	if err := row.Scan(bookingDest(&b)...); err != nil {
		return nil, err
	}
	return &b, nil
}
