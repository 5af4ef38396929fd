package notifications

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
)

// DefaultTimeout время на отправку одного письма
const DefaultTimeout = 10 * time.Second

// Dispatcher отправляет письма клиентам в фоне
// Ошибки отправки логируются и учитываются в метриках, вызывающему коду не возвращаются
type Dispatcher struct {
	sender   EmailSender
	renderer *renderer
	settings models.Settings
	metrics  Metrics
	logger   Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher создает диспетчер писем
func NewDispatcher(sender EmailSender, settings models.Settings, metrics Metrics, logger Logger) (*Dispatcher, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}
	settings.AppURL = strings.TrimRight(settings.AppURL, "/")

	return &Dispatcher{
		sender:   sender,
		renderer: r,
		settings: settings,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// SendPaymentInstructions письмо с реквизитами и ссылкой на загрузку чека
func (d *Dispatcher) SendPaymentInstructions(b models.BookingEmail) {
	data := d.bookingData(b)
	data.UploadURL = fmt.Sprintf("%s/booking/%s/upload", d.settings.AppURL, b.BookingID)
	d.dispatch(models.KindPaymentInstructions, b.Email, data)
}

// SendPOPReceived письмо о получении чека
func (d *Dispatcher) SendPOPReceived(email, customerName string) {
	d.dispatch(models.KindPOPReceived, email, templateData{
		StudioName:   d.settings.StudioName,
		CustomerName: customerName,
	})
}

// SendBookingConfirmed письмо о подтверждении записи
func (d *Dispatcher) SendBookingConfirmed(b models.BookingEmail) {
	d.dispatch(models.KindBookingConfirmed, b.Email, d.bookingData(b))
}

// SendBookingRejected письмо об отклонении чека, причина необязательна
func (d *Dispatcher) SendBookingRejected(email, customerName string, reason *string) {
	data := templateData{
		StudioName:   d.settings.StudioName,
		CustomerName: customerName,
	}
	if reason != nil {
		data.Reason = *reason
	}
	d.dispatch(models.KindBookingRejected, email, data)
}

// Close перестает принимать письма и ждет завершения отправляемых
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) bookingData(b models.BookingEmail) templateData {
	return templateData{
		StudioName:   d.settings.StudioName,
		CustomerName: b.CustomerName,
		ServiceName:  b.ServiceName,
		DateTime:     formatDateTime(b.StartTime, d.settings.Location),
		Amount:       formatCurrency(b.AmountDue),
		Reference:    b.Reference,
		Banking:      d.settings.Banking,
	}
}

func (d *Dispatcher) dispatch(kind, to string, data templateData) {
	subject, html, err := d.renderer.render(kind, d.settings.StudioName, data)
	if err != nil {
		d.logger.Error("Notifications: %v", err)
		d.metrics.IncNotification(kind, models.ResultFailed)
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("Notifications: dispatcher closed, dropping %s email to %s", kind, to)
		d.metrics.IncNotification(kind, models.ResultDropped)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.settings.Timeout)
		defer cancel()

		id, err := d.sender.Send(ctx, to, subject, html)
		if err != nil {
			d.logger.Error("Notifications: failed to send %s email to %s: %v", kind, to, err)
			d.metrics.IncNotification(kind, models.ResultFailed)
			return
		}

		d.logger.Info("Notifications: %s email sent to %s, id=%s", kind, to, id)
		d.metrics.IncNotification(kind, models.ResultSent)
	}()
}
