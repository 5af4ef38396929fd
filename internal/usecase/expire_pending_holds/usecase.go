package expire_pending_holds

import (
	"context"
	"fmt"
	"time"
)

// UseCase отменяет заявки без чека, которые дольше окна удержания занимают слот
type UseCase struct {
	bookingRepo  BookingRepository
	hold         time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// hold = 0 отключает очистку
func NewUseCase(bookingRepo BookingRepository, hold time.Duration, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		hold:         hold,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Enabled сообщает, задано ли окно удержания
func (uc *UseCase) Enabled() bool {
	return uc.hold > 0
}

// Execute выполняет один проход очистки
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	if !uc.Enabled() {
		return nil, ErrDisabled
	}

	cutoff := uc.timeProvider.Now().Add(-uc.hold)

	n, err := uc.bookingRepo.CancelStaleRequested(ctx, cutoff)
	if err != nil {
		uc.logger.Error("ExpirePendingHolds: failed to cancel stale requests before %s: %v", cutoff.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if n > 0 {
		uc.logger.Info("ExpirePendingHolds: cancelled %d stale requests created before %s", n, cutoff.Format(time.RFC3339))
	}

	return &Response{Cutoff: cutoff, Cancelled: n}, nil
}
