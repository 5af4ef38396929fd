package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type sentEmail struct {
	to, subject, html string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (s *fakeSender) Send(_ context.Context, to, subject, html string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, sentEmail{to: to, subject: subject, html: html})
	return "email-id", nil
}

type fakeMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *fakeMetrics) IncNotification(kind, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[kind+"/"+result]++
}

func newDispatcher(t *testing.T, sender EmailSender) (*Dispatcher, *fakeMetrics) {
	m := &fakeMetrics{}
	d, err := NewDispatcher(sender, models.Settings{
		StudioName: "SheDidThat",
		AppURL:     "https://shedidthat.example/",
		Banking: models.BankingDetails{
			BankName:      "FNB (First National Bank)",
			AccountName:   "SheDidThat Hair Studio",
			AccountNumber: "62000000000",
			BranchCode:    "250655",
			AccountType:   "Cheque Account",
		},
		Location: time.FixedZone("SAST", 2*60*60),
		Timeout:  time.Second,
	}, m, logger.NewNop())
	require.NoError(t, err)
	return d, m
}

func TestDispatcher_SendPaymentInstructions(t *testing.T) {
	sender := &fakeSender{}
	d, m := newDispatcher(t, sender)

	d.SendPaymentInstructions(models.BookingEmail{
		BookingID:    "0b8f6a2e-1111-2222-3333-444455556666",
		CustomerName: "Thandi",
		Email:        "thandi@example.com",
		ServiceName:  "Knotless braids",
		StartTime:    time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		AmountDue:    1250,
		Reference:    "SHEDIDTHAT-0B8F6A2E",
	})
	require.NoError(t, d.Close(context.Background()))

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Equal(t, "thandi@example.com", email.to)
	assert.Equal(t, "Payment Instructions - SheDidThat", email.subject)
	assert.Contains(t, email.html, "Hi Thandi")
	assert.Contains(t, email.html, "Tue, 10 Mar 2026 at 10:00")
	assert.Contains(t, email.html, "R 1,250")
	assert.Contains(t, email.html, "250655")
	assert.Contains(t, email.html, "https://shedidthat.example/booking/0b8f6a2e-1111-2222-3333-444455556666/upload")
	assert.Equal(t, 1, m.counts["payment_instructions/sent"])
}

func TestDispatcher_SendBookingRejected(t *testing.T) {
	t.Run("with escaped reason", func(t *testing.T) {
		sender := &fakeSender{}
		d, _ := newDispatcher(t, sender)

		reason := "<b>amount</b> does not match"
		d.SendBookingRejected("thandi@example.com", "Thandi", &reason)
		require.NoError(t, d.Close(context.Background()))

		require.Len(t, sender.sent, 1)
		assert.Contains(t, sender.sent[0].html, "Reason:")
		assert.Contains(t, sender.sent[0].html, "&lt;b&gt;amount&lt;/b&gt;")
	})

	t.Run("without reason", func(t *testing.T) {
		sender := &fakeSender{}
		d, _ := newDispatcher(t, sender)

		d.SendBookingRejected("thandi@example.com", "Thandi", nil)
		require.NoError(t, d.Close(context.Background()))

		require.Len(t, sender.sent, 1)
		assert.NotContains(t, sender.sent[0].html, "Reason:")
	})
}

func TestDispatcher_FailuresAreCounted(t *testing.T) {
	d, m := newDispatcher(t, &fakeSender{err: errors.New("resend down")})

	d.SendPOPReceived("thandi@example.com", "Thandi")
	d.SendBookingConfirmed(models.BookingEmail{Email: "thandi@example.com", CustomerName: "Thandi"})
	require.NoError(t, d.Close(context.Background()))

	assert.Equal(t, 1, m.counts["pop_received/failed"])
	assert.Equal(t, 1, m.counts["booking_confirmed/failed"])
}

func TestDispatcher_DropsAfterClose(t *testing.T) {
	sender := &fakeSender{}
	d, m := newDispatcher(t, sender)

	require.NoError(t, d.Close(context.Background()))
	d.SendPOPReceived("thandi@example.com", "Thandi")

	assert.Empty(t, sender.sent)
	assert.Equal(t, 1, m.counts["pop_received/dropped"])
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R 850", formatCurrency(850))
	assert.Equal(t, "R 12,345", formatCurrency(12345))
	assert.Equal(t, "R 427.50", formatCurrency(427.5))
	assert.Equal(t, "R 1,234.05", formatCurrency(1234.05))
	assert.Equal(t, "R 1,000,000", formatCurrency(1000000))
}
