package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Service names, also used as the `service` field in health responses.
const (
	Frontend   = "frontend"
	ProductAPI = "product-api"
	Inventory  = "inventory"
)

type Config struct {
	Service         string
	Port            string
	ProductAPIURL   string
	InventoryURL    string
	UpstreamTimeout time.Duration
	SimulatedDelay  time.Duration
	PostgresDSN     string
	GRPCHealthPort  string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Addr is the HTTP listen address.
func (c Config) Addr() string { return ":" + c.Port }

// GRPCHealthAddr is empty when the gRPC health listener is disabled.
func (c Config) GRPCHealthAddr() string {
	if c.GRPCHealthPort == "" {
		return ""
	}
	return ":" + c.GRPCHealthPort
}

var defaultPorts = map[string]string{
	Frontend:   "3000",
	ProductAPI: "3001",
	Inventory:  "3002",
}

var defaultDelaysMs = map[string]int{
	ProductAPI: 100,
	Inventory:  50,
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoienv(k string, def int) int {
	v := getenv(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func durenvms(k string, defMs int) time.Duration {
	return time.Duration(atoienv(k, defMs)) * time.Millisecond
}

func Load(service string) Config {
	_ = godotenv.Load() // load .env if it exists
	return Config{
		Service:         service,
		Port:            getenv("PORT", defaultPorts[service]),
		ProductAPIURL:   getenv("PRODUCT_API_URL", "http://product-api:3001"),
		InventoryURL:    getenv("INVENTORY_URL", "http://inventory:3002"),
		UpstreamTimeout: durenvms("UPSTREAM_TIMEOUT_MS", 5000),
		SimulatedDelay:  durenvms("SIMULATED_DELAY_MS", defaultDelaysMs[service]),
		PostgresDSN:     getenv("POSTGRES_DSN", ""),
		GRPCHealthPort:  getenv("GRPC_HEALTH_PORT", ""),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		ShutdownTimeout: durenvms("SHUTDOWN_TIMEOUT_MS", 10000),
	}
}

// Log writes the effective configuration. The DSN is reduced to a flag.
func (c Config) Log(lg zerolog.Logger) {
	ev := lg.Info().
		Str("port", c.Port).
		Dur("upstream_timeout", c.UpstreamTimeout).
		Dur("simulated_delay", c.SimulatedDelay).
		Bool("postgres", c.PostgresDSN != "").
		Str("grpc_health_port", c.GRPCHealthPort)
	switch c.Service {
	case Frontend:
		ev = ev.Str("product_api_url", c.ProductAPIURL)
	case ProductAPI:
		ev = ev.Str("inventory_url", c.InventoryURL)
	}
	ev.Msg("config")
}
