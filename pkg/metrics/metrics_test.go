package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "studio-booking")

	m.ObserveHTTP("GET", "/api/v1/availability", 200, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/availability", 200, 20*time.Millisecond)
	m.IncNotification("booking_confirmed", "sent")
	m.IncNotification("booking_confirmed", "failed")
	m.IncBookingConflict("approve")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("studio-booking", "GET", "/api/v1/availability", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsTotal.WithLabelValues("studio-booking", "booking_confirmed", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingConflicts.WithLabelValues("studio-booking", "approve")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("select", errors.New("boom"), time.Millisecond)
		m.IncNotification("x", "sent")
		m.ObserveSlots(3)
		m.IncBookingConflict("create")
	})
}
