package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	m := New("inventory")
	m.ObserveRequest(http.MethodGet, "/inventory/:productId", 200, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/inventory/:productId", 200, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/inventory/:productId", "200")); got != 2 {
		t.Fatalf("requests=%v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("unmatched=%v, want 1", got)
	}
}

func TestDegraded(t *testing.T) {
	m := New("product-api")
	m.Degraded("not_found")
	m.Degraded("not_found")
	m.Degraded("unreachable")

	if got := testutil.ToFloat64(m.degraded.WithLabelValues("not_found")); got != 2 {
		t.Fatalf("not_found=%v", got)
	}
	if got := testutil.ToFloat64(m.degraded.WithLabelValues("unreachable")); got != 1 {
		t.Fatalf("unreachable=%v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.Degraded("x")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New("frontend")
	m.ObserveRequest(http.MethodGet, "/health", 200, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `http_requests_total{method="GET",route="/health",service="frontend",status="200"} 1`) {
		t.Fatalf("missing request counter:\n%s", body)
	}
}
