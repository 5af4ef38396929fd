package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	notificationModels "github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
)

// maxReferenceAttempts сколько раз пробуем создать заявку при совпадении референса
const maxReferenceAttempts = 3

// UseCase use case для создания заявки на бронирование
type UseCase struct {
	bookingRepo   BookingRepository
	confirmedRepo ConfirmedBookingRepository
	catalogRepo   CatalogRepository
	txManager     TransactionManager
	notifier      Notifier
	hours         domain.BusinessHours
	settings      Settings
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	confirmedRepo ConfirmedBookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	notifier Notifier,
	hours domain.BusinessHours,
	settings Settings,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if settings.ReferencePrefix == "" {
		settings.ReferencePrefix = domain.DefaultReferencePrefix
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		confirmedRepo: confirmedRepo,
		catalogRepo:   catalogRepo,
		txManager:     txManager,
		notifier:      notifier,
		hours:         hours,
		settings:      settings,
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

// Execute выполняет use case создания заявки
// Проверка пересечений и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: email=%s, service=%s, start=%s, payment=%s",
		req.Email, req.ServiceID, req.StartTime.Format(time.RFC3339), req.PaymentChoice)

	// 2. Получаем услугу и опцию волос
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var hairPriceDelta float64
	if req.HairOptionID != nil {
		option, err := uc.catalogRepo.GetHairOptionByID(ctx, *req.HairOptionID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrHairOptionNotFound) {
				uc.logger.Warn("CreateBooking: hair option id=%s not found", *req.HairOptionID)
				return nil, ErrHairOptionNotFound
			}
			uc.logger.Error("CreateBooking: failed to get hair option id=%s: %v", *req.HairOptionID, err)
			return nil, fmt.Errorf("%w: failed to get hair option: %v", ErrInternal, err)
		}
		if option.ServiceID != service.ID {
			uc.logger.Warn("CreateBooking: hair option id=%s belongs to service id=%s, not %s",
				option.ID, option.ServiceID, service.ID)
			return nil, ErrHairOptionNotFound
		}
		hairPriceDelta = option.PriceDelta
	}

	// 3. Считаем интервал и проверяем время
	slot := domain.TimeRange{
		Start: req.StartTime,
		End:   req.StartTime.Add(time.Duration(service.DurationMinutes) * time.Minute),
	}

	if err := validateTiming(slot, uc.hours, uc.timeProvider.Now(), uc.settings.MaxAdvanceDays); err != nil {
		uc.logger.Warn("CreateBooking: timing validation failed for start=%s: %v", req.StartTime.Format(time.RFC3339), err)
		return nil, err
	}

	// 4. Сумма к оплате считается на сервере
	choice := domain.PaymentChoice(req.PaymentChoice)
	amountDue := service.CalculateAmountDue(hairPriceDelta, choice)

	var created *domain.BookingRequest
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		id := uuid.New()
		booking := &domain.BookingRequest{
			ID:              id,
			CustomerName:    req.CustomerName,
			Email:           req.Email,
			Phone:           req.Phone,
			ServiceID:       service.ID,
			HairOptionID:    req.HairOptionID,
			StartTime:       slot.Start,
			EndTime:         slot.End,
			PaymentChoice:   choice,
			AmountDue:       amountDue,
			JuicePreference: req.JuicePreference,
			Status:          domain.StatusRequested,
			Reference:       domain.GenerateReference(uc.settings.ReferencePrefix, id),
		}

		created, err = uc.createInTx(ctx, booking)
		if errors.Is(err, bookingRepo.ErrDuplicateReference) {
			uc.logger.Warn("CreateBooking: reference %s already used, attempt %d/%d",
				booking.Reference, attempt, maxReferenceAttempts)
			continue
		}
		break
	}

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			return nil, err
		}
		// Конкурентная заявка на то же время не дала зафиксировать транзакцию
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict for start=%s: %v", req.StartTime.Format(time.RFC3339), err)
			uc.metrics.IncBookingConflict("create")
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking request: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking request: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking request id=%s, reference=%s, amount_due=%.2f",
		created.ID, created.Reference, created.AmountDue)

	// 5. Письмо с реквизитами отправляется в фоне
	uc.notifier.SendPaymentInstructions(notificationModels.BookingEmail{
		BookingID:    created.ID.String(),
		CustomerName: created.CustomerName,
		Email:        created.Email,
		ServiceName:  service.Name,
		StartTime:    created.StartTime,
		AmountDue:    created.AmountDue,
		Reference:    created.Reference,
	})

	return &Response{
		ID:            created.ID,
		Reference:     created.Reference,
		Status:        string(created.Status),
		ServiceName:   service.Name,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		PaymentChoice: string(created.PaymentChoice),
		AmountDue:     created.AmountDue,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// createInTx проверяет пересечения и сохраняет заявку в одной транзакции
func (uc *UseCase) createInTx(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error) {
	var result *domain.BookingRequest

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayStart, dayEnd := uc.hours.DayBounds(uc.hours.In(booking.StartTime))

		confirmed, err := uc.confirmedRepo.GetRanges(txCtx, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to get confirmed bookings: %w", err)
		}

		if overlapsAny(booking.Range(), confirmed) {
			uc.logger.Warn("CreateBooking: slot %s overlaps a confirmed booking", booking.StartTime.Format(time.RFC3339))
			uc.metrics.IncBookingConflict("create")
			return ErrSlotNotAvailable
		}

		pending, err := uc.bookingRepo.GetPendingRanges(txCtx, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to get pending requests: %w", err)
		}

		if overlapsAny(booking.Range(), pending) {
			uc.logger.Warn("CreateBooking: slot %s overlaps a pending request", booking.StartTime.Format(time.RFC3339))
			uc.metrics.IncBookingConflict("create")
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	return result, err
}
