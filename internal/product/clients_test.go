package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MikeMC777/shop-demo/internal/httpx"
)

func newInventoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/inventory/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"productId":1,"stock":150}`))
	})
	mux.HandleFunc("/inventory/5", func(w http.ResponseWriter, r *http.Request) {
		// answers 200 without a stock field
		_, _ = w.Write([]byte(`{"productId":5}`))
	})
	mux.HandleFunc("/inventory/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Product not found in inventory"})
	})
	return httptest.NewServer(mux)
}

func TestInventoryClient_Stock(t *testing.T) {
	srv := newInventoryServer(t)
	defer srv.Close()

	c := NewInventoryClient(httpx.NewClient(2*time.Second), srv.URL+"/")

	n, err := c.Stock(context.Background(), 1)
	if err != nil || n != 150 {
		t.Fatalf("n=%d err=%v", n, err)
	}

	if _, err := c.Stock(context.Background(), 2); !httpx.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("want 404 status error, got %v", err)
	}

	if _, err := c.Stock(context.Background(), 5); err == nil {
		t.Fatalf("missing stock field must be an error")
	}
}

func TestInventoryClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"productId":1,"stock":1}`))
	}))
	defer srv.Close()

	c := NewInventoryClient(httpx.NewClient(20*time.Millisecond), srv.URL)
	_, err := c.Stock(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected timeout")
	}
	if got := degradeReason(err); got != "timeout" {
		t.Fatalf("reason=%q err=%v", got, err)
	}
}

func TestCatalog_WithRealClient(t *testing.T) {
	srv := newInventoryServer(t)
	defer srv.Close()

	cat := NewCatalog(NewStaticRepo(Seed), NewInventoryClient(httpx.NewClient(2*time.Second), srv.URL))
	got, err := cat.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].Stock != 150 || got[1].Stock != 0 || got[2].Stock != 0 {
		t.Fatalf("stocks=%d,%d,%d", got[0].Stock, got[1].Stock, got[2].Stock)
	}
}

func TestEnrichedProduct_JSON(t *testing.T) {
	b, err := json.Marshal(EnrichedProduct{Product: Seed[0], Stock: 0})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"name":"Solar Panel 400W","price":299.99,"category":"solar","stock":0}`
	if string(b) != want {
		t.Fatalf("json=%s\nwant %s", b, want)
	}
}
