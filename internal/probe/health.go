// Package probe serves the standard grpc.health.v1 service next to the HTTP API.
package probe

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Health struct {
	service string
	srv     *grpc.Server
	hs      *health.Server
}

// NewHealth reports SERVING for service (and the empty overall name) until Shutdown.
func NewHealth(service string) *Health {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	return &Health{service: service, srv: srv, hs: hs}
}

func (h *Health) Serve(lis net.Listener) error {
	return h.srv.Serve(lis)
}

// Shutdown flips every status to NOT_SERVING and drains the server.
func (h *Health) Shutdown() {
	h.hs.Shutdown()
	h.srv.GracefulStop()
}
