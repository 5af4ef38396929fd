package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
)

// Service сервис чтения заявок: публичный просмотр, список для админки и клиентская база
type Service struct {
	bookingRepo BookingRepository
	proofRepo   ProofRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	proofRepo ProofRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		proofRepo:   proofRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetByID получает заявку по ID для клиента
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	serviceName := models.UnknownServiceName
	service, err := s.serviceRepo.GetServiceByID(ctx, booking.ServiceID)
	switch {
	case err == nil:
		serviceName = service.Name
	case errors.Is(err, catalogRepo.ErrServiceNotFound):
		// Услугу могли удалить после бронирования
	default:
		s.logger.Error("GetByID: failed to get service id=%s: %v", booking.ServiceID, err)
		return nil, fmt.Errorf("%w: GetByID - service lookup: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, serviceName), nil
}

// ListForAdmin получает заявки с деталями и чеками, сначала новые
func (s *Service) ListForAdmin(ctx context.Context, req *models.ListBookingsRequest) (*models.AdminBookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListForAdmin: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	details, err := s.bookingRepo.ListWithDetails(ctx, filter)
	if err != nil {
		s.logger.Error("ListForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	ids := make([]uuid.UUID, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
	}

	proofs, err := s.proofRepo.ListByBookingRequestIDs(ctx, ids)
	if err != nil {
		s.logger.Error("ListForAdmin: failed to load payment proofs: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - proofs: %v", ErrInternal, err)
	}

	resp := &models.AdminBookingListResponse{Bookings: make([]*models.AdminBookingResponse, 0, len(details))}
	for _, d := range details {
		d.PaymentProofs = proofs[d.ID]
		resp.Bookings = append(resp.Bookings, models.FromDomainDetails(d))
	}

	s.logger.Info("ListForAdmin: fetched %d bookings", len(resp.Bookings))
	return resp, nil
}

// ListClients строит клиентскую базу, группируя заявки по email без учёта регистра
// Имя и телефон берутся из самой свежей заявки, выручка считается только по подтверждённым
func (s *Service) ListClients(ctx context.Context) (*models.ClientListResponse, error) {
	details, err := s.bookingRepo.ListWithDetails(ctx, domain.BookingRequestsFilter{})
	if err != nil {
		s.logger.Error("ListClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}

	resp := &models.ClientListResponse{}
	byEmail := make(map[string]*models.ClientResponse)

	for _, d := range details {
		key := strings.ToLower(strings.TrimSpace(d.Email))
		client, ok := byEmail[key]
		if !ok {
			client = &models.ClientResponse{
				Email:       d.Email,
				Name:        d.CustomerName,
				Phone:       d.Phone,
				Bookings:    make([]*models.ClientBookingResponse, 0, 1),
				LastBooking: d.CreatedAt,
			}
			byEmail[key] = client
			resp.Clients = append(resp.Clients, client)
		}

		serviceName := d.ServiceName
		if serviceName == "" {
			serviceName = models.UnknownServiceName
		}
		client.Bookings = append(client.Bookings, &models.ClientBookingResponse{
			ID:              d.ID,
			Service:         serviceName,
			Date:            d.StartTime,
			Amount:          d.AmountDue,
			Status:          string(d.Status),
			Reference:       d.Reference,
			JuicePreference: d.JuicePreference,
		})

		switch {
		case d.Status == domain.StatusConfirmed:
			client.TotalSpent += d.AmountDue
			client.ConfirmedBookings++
			resp.Stats.ConfirmedBookings++
			resp.Stats.TotalRevenue += d.AmountDue
		case d.IsPending():
			resp.Stats.PendingBookings++
		}

		if d.CreatedAt.After(client.LastBooking) {
			client.Name = d.CustomerName
			client.Phone = d.Phone
			client.LastBooking = d.CreatedAt
		}
	}

	if resp.Clients == nil {
		resp.Clients = make([]*models.ClientResponse, 0)
	}

	sort.SliceStable(resp.Clients, func(i, j int) bool {
		return resp.Clients[i].LastBooking.After(resp.Clients[j].LastBooking)
	})

	resp.Stats.TotalClients = len(resp.Clients)
	resp.Stats.TotalBookings = len(details)

	s.logger.Info("ListClients: %d clients from %d bookings", resp.Stats.TotalClients, resp.Stats.TotalBookings)
	return resp, nil
}
