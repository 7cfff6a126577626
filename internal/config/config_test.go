package config

import (
	"testing"
	"time"
)

func TestLoad_PerServiceDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "PRODUCT_API_URL", "INVENTORY_URL", "UPSTREAM_TIMEOUT_MS", "SIMULATED_DELAY_MS", "POSTGRES_DSN", "GRPC_HEALTH_PORT"} {
		t.Setenv(k, "")
	}

	cases := []struct {
		service string
		port    string
		delay   time.Duration
	}{
		{Frontend, "3000", 0},
		{ProductAPI, "3001", 100 * time.Millisecond},
		{Inventory, "3002", 50 * time.Millisecond},
	}
	for _, tc := range cases {
		cfg := Load(tc.service)
		if cfg.Port != tc.port {
			t.Fatalf("%s: port=%q, want %q", tc.service, cfg.Port, tc.port)
		}
		if cfg.SimulatedDelay != tc.delay {
			t.Fatalf("%s: delay=%s, want %s", tc.service, cfg.SimulatedDelay, tc.delay)
		}
		if cfg.UpstreamTimeout != 5*time.Second {
			t.Fatalf("%s: timeout=%s", tc.service, cfg.UpstreamTimeout)
		}
		if cfg.GRPCHealthAddr() != "" {
			t.Fatalf("%s: grpc health should be disabled by default", tc.service)
		}
	}

	cfg := Load(Frontend)
	if cfg.ProductAPIURL != "http://product-api:3001" {
		t.Fatalf("product api url=%q", cfg.ProductAPIURL)
	}
	if cfg.InventoryURL != "http://inventory:3002" {
		t.Fatalf("inventory url=%q", cfg.InventoryURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("INVENTORY_URL", "http://localhost:4002")
	t.Setenv("UPSTREAM_TIMEOUT_MS", "250")
	t.Setenv("SIMULATED_DELAY_MS", "0")
	t.Setenv("GRPC_HEALTH_PORT", "50051")

	cfg := Load(ProductAPI)
	if cfg.Addr() != ":9999" {
		t.Fatalf("addr=%q", cfg.Addr())
	}
	if cfg.InventoryURL != "http://localhost:4002" {
		t.Fatalf("inventory url=%q", cfg.InventoryURL)
	}
	if cfg.UpstreamTimeout != 250*time.Millisecond {
		t.Fatalf("timeout=%s", cfg.UpstreamTimeout)
	}
	if cfg.SimulatedDelay != 0 {
		t.Fatalf("delay=%s", cfg.SimulatedDelay)
	}
	if cfg.GRPCHealthAddr() != ":50051" {
		t.Fatalf("grpc addr=%q", cfg.GRPCHealthAddr())
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT_MS", "soon")
	t.Setenv("SIMULATED_DELAY_MS", "-5")

	cfg := Load(Inventory)
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Fatalf("timeout=%s", cfg.UpstreamTimeout)
	}
	if cfg.SimulatedDelay != 50*time.Millisecond {
		t.Fatalf("delay=%s", cfg.SimulatedDelay)
	}
}
