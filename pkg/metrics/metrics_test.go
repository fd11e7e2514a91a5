package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpstream("list_reservations", "ok", time.Second)
		m.IncPollerTick("kiosk", "ok")
		m.SetKioskSubscribers(3)
		m.AddBlockedSlots("ok", 2)
		m.IncBookingFlow("confirmed")
		m.ObserveDBQuery("exec", time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("barber-frontdesk")
	m.AddBlockedSlots("ok", 3)
	m.AddBlockedSlots("failed", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `blocked_slots_total{outcome="ok",service="barber-frontdesk"} 3`)
	assert.Contains(t, rec.Body.String(), `blocked_slots_total{outcome="failed",service="barber-frontdesk"} 2`)
}
