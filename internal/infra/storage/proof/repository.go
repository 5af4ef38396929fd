package proof

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const (
	table = "payment_proofs"

	foreignKeyViolation = "23503"
)

var columns = []string{
	"id",
	"booking_request_id",
	"file_url",
	"reference_used",
	"verification_status",
	"review_note",
	"uploaded_at",
}

// Repository репозиторий чеков об оплате
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет загруженный чек
func (r *Repository) Create(ctx context.Context, p *domain.PaymentProof) (*domain.PaymentProof, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "booking_request_id", "file_url", "reference_used", "verification_status").
		Values(p.ID, p.BookingRequestID, p.FileURL, p.ReferenceUsed, p.VerificationStatus).
		Suffix("RETURNING uploaded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.UploadedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return p, nil
}

// UpdateVerificationByBookingRequest проставляет статус проверки всем чекам заявки
func (r *Repository) UpdateVerificationByBookingRequest(
	ctx context.Context,
	bookingRequestID uuid.UUID,
	status domain.VerificationStatus,
	note *string,
) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("verification_status", status).
		Set("review_note", note).
		Where(squirrel.Eq{"booking_request_id": bookingRequestID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpdateVerificationByBookingRequest - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateVerificationByBookingRequest - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateVerificationByBookingRequest - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// ListByBookingRequestIDs возвращает чеки, сгруппированные по ID заявки, в порядке загрузки
func (r *Repository) ListByBookingRequestIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*domain.PaymentProof, error) {
	result := make(map[uuid.UUID][]*domain.PaymentProof)
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booking_request_id": ids}).
		OrderBy("uploaded_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingRequestIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingRequestIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.PaymentProof
		if err := rows.Scan(
			&p.ID,
			&p.BookingRequestID,
			&p.FileURL,
			&p.ReferenceUsed,
			&p.VerificationStatus,
			&p.ReviewNote,
			&p.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByBookingRequestIDs - scan proof: %v", ErrScanRow, err)
		}
		result[p.BookingRequestID] = append(result[p.BookingRequestID], &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBookingRequestIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
