package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel_rooms/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so every family is exported
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveCatalog(6, 4)
	observability.ObserveCache("redis", "hit")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, want := range []string{
		"hotel_http_requests_total",
		`hotel_catalog_rooms{state="available"} 4`,
		`hotel_catalog_rooms{state="total"} 6`,
		`hotel_cache_events_total{cache="redis",event="hit"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}
