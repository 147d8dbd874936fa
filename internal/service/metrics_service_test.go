package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/event"
)

func TestMetricsServiceHandlerExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/classes", http.StatusOK, 20*time.Millisecond)
	m.ObservePaymentIntent(true, 150*time.Millisecond)
	m.IncEnrollments()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/classes",status="200"} 1`))
	assert.Contains(t, body, "payment_intent_duration_seconds")
	assert.Contains(t, body, "class_enrollments_total 1")
}

func TestMetricsServiceCommandMonitor(t *testing.T) {
	m := NewMetricsService()
	monitor := m.CommandMonitor()
	require.NotNil(t, monitor)

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "find", Duration: 3 * time.Millisecond},
	})
	monitor.Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "insert", Duration: time.Millisecond},
	})

	assert.Equal(t, 2, testutil.CollectAndCount(m.dbCommand))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.ObservePaymentIntent(false, time.Millisecond)
	m.IncEnrollments()
	assert.Nil(t, m.CommandMonitor())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
