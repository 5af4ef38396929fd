package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

// UseCase use case для получения доступных слотов на день
// Результат носит рекомендательный характер: окончательная проверка конфликта
// выполняется при подтверждении заявки администратором
type UseCase struct {
	bookingRepo   BookingRequestRepository
	confirmedRepo ConfirmedBookingRepository
	serviceRepo   ServiceRepository
	hours         domain.BusinessHours
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRequestRepository,
	confirmedRepo ConfirmedBookingRepository,
	serviceRepo ServiceRepository,
	hours domain.BusinessHours,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		confirmedRepo: confirmedRepo,
		serviceRepo:   serviceRepo,
		hours:         hours,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность
	duration := ptr.Deref(req.DurationMinutes, domain.DefaultDurationMinutes)

	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetServiceByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%s not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrStoreUnavailable, err)
		}
		duration = service.DurationMinutes
	}

	dayStart, dayEnd := uc.hours.DayBounds(req.Date)

	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d", dayStart.Format(domain.DateFormat), duration)

	response := &Response{
		Date:            dayStart,
		DurationMinutes: duration,
		Slots:           []domain.Slot{},
	}

	// 3. Выходной день - движок не вызываем
	if uc.hours.IsClosed(req.Date) {
		uc.logger.Info("GetAvailableSlots: studio is closed on %s", dayStart.Format(domain.DateFormat))
		response.Closed = true
		uc.metrics.ObserveSlots(0)
		return response, nil
	}

	// 4. Получаем занятые интервалы на этот день
	confirmed, err := uc.confirmedRepo.GetRanges(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get confirmed bookings: %v", ErrStoreUnavailable, err)
	}

	pending, err := uc.bookingRepo.GetPendingRanges(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get pending requests: %v", err)
		return nil, fmt.Errorf("%w: failed to get pending requests: %v", ErrStoreUnavailable, err)
	}

	// 5. Генерируем слоты
	response.Slots = GenerateSlots(req.Date, duration, confirmed, pending, uc.hours, uc.timeProvider.Now())
	uc.metrics.ObserveSlots(len(response.Slots))

	uc.logger.Info("GetAvailableSlots: generated %d slots for %s (confirmed=%d, pending=%d)",
		len(response.Slots), dayStart.Format(domain.DateFormat), len(confirmed), len(pending))

	return response, nil
}
