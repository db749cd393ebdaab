package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("barber", prometheus.NewRegistry())

	m.IncBookingCreated()
	m.IncBookingCreated()
	m.IncBookingRejected("slot_unavailable")
	m.AddBookingsPurged(3)
	m.IncReminderSent("24h")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsRejectedTotal.WithLabelValues("slot_unavailable")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.BookingsPurgedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemindersSentTotal.WithLabelValues("24h")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated()
		m.IncBookingRejected("x")
		m.AddBookingsPurged(1)
		m.IncReminderSent("2h")
		m.ObserveHTTPRequest("GET", "/", "200", 0.1)
		m.ObserveDBQuery("query", 0.1)
		m.SetPoolStats(1, 1, 0, 0)
	})
}
