package cancel_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingRequest, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.BookingRequest)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockConfirmedRepo struct{ mock.Mock }

func (m *mockConfirmedRepo) DeleteByBookingRequestID(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func TestUseCase_Execute(t *testing.T) {
	t.Run("pending request", func(t *testing.T) {
		id := uuid.New()
		bookings := &mockBookingRepo{}
		confirmed := &mockConfirmedRepo{}
		bookings.On("GetByID", mock.Anything, id).Return(&domain.BookingRequest{ID: id, Status: domain.StatusRequested}, nil)
		bookings.On("UpdateStatus", mock.Anything, id, domain.StatusCancelled).Return(nil)

		resp, err := NewUseCase(bookings, confirmed, inlineTx{}, logger.NewNop()).
			Execute(context.Background(), &Request{BookingID: id})
		require.NoError(t, err)

		assert.Equal(t, "cancelled", resp.Status)
		assert.False(t, resp.ReleasedSlot)
		confirmed.AssertNotCalled(t, "DeleteByBookingRequestID", mock.Anything, mock.Anything)
	})

	t.Run("confirmed request releases slot", func(t *testing.T) {
		id := uuid.New()
		bookings := &mockBookingRepo{}
		confirmed := &mockConfirmedRepo{}
		bookings.On("GetByID", mock.Anything, id).Return(&domain.BookingRequest{ID: id, Status: domain.StatusConfirmed}, nil)
		confirmed.On("DeleteByBookingRequestID", mock.Anything, id).Return(int64(1), nil)
		bookings.On("UpdateStatus", mock.Anything, id, domain.StatusCancelled).Return(nil)

		resp, err := NewUseCase(bookings, confirmed, inlineTx{}, logger.NewNop()).
			Execute(context.Background(), &Request{BookingID: id})
		require.NoError(t, err)

		assert.True(t, resp.ReleasedSlot)
		bookings.AssertExpectations(t)
		confirmed.AssertExpectations(t)
	})

	t.Run("rejected request", func(t *testing.T) {
		id := uuid.New()
		bookings := &mockBookingRepo{}
		bookings.On("GetByID", mock.Anything, id).Return(&domain.BookingRequest{ID: id, Status: domain.StatusRejected}, nil)

		_, err := NewUseCase(bookings, &mockConfirmedRepo{}, inlineTx{}, logger.NewNop()).
			Execute(context.Background(), &Request{BookingID: id})
		assert.ErrorIs(t, err, ErrCannotCancel)
		bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		bookings := &mockBookingRepo{}
		bookings.On("GetByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

		_, err := NewUseCase(bookings, &mockConfirmedRepo{}, inlineTx{}, logger.NewNop()).
			Execute(context.Background(), &Request{BookingID: id})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("release failure", func(t *testing.T) {
		id := uuid.New()
		bookings := &mockBookingRepo{}
		confirmed := &mockConfirmedRepo{}
		bookings.On("GetByID", mock.Anything, id).Return(&domain.BookingRequest{ID: id, Status: domain.StatusConfirmed}, nil)
		confirmed.On("DeleteByBookingRequestID", mock.Anything, id).Return(int64(0), errors.New("connection reset"))

		_, err := NewUseCase(bookings, confirmed, inlineTx{}, logger.NewNop()).
			Execute(context.Background(), &Request{BookingID: id})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
