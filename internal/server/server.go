// Package server runs a service's listeners until its context is cancelled.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/tomb.v2"

	"github.com/MikeMC777/shop-demo/internal/probe"
)

type Server struct {
	HTTP         *http.Server
	HTTPListener net.Listener

	// Health and HealthListener are optional.
	Health         *probe.Health
	HealthListener net.Listener

	ShutdownTimeout time.Duration
	Log             zerolog.Logger
}

// Listen opens the HTTP listener and, when healthAddr is set, the gRPC health one.
func Listen(addr, healthAddr string) (httpLis, healthLis net.Listener, err error) {
	httpLis, err = net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	if healthAddr == "" {
		return httpLis, nil, nil
	}
	healthLis, err = net.Listen("tcp", healthAddr)
	if err != nil {
		_ = httpLis.Close()
		return nil, nil, err
	}
	return httpLis, healthLis, nil
}

// Run serves until ctx is cancelled or a listener fails, then shuts everything
// down. A cancelled ctx is a clean stop and returns nil.
func (s *Server) Run(ctx context.Context) error {
	t, _ := tomb.WithContext(ctx)

	t.Go(func() error {
		s.Log.Info().Str("addr", s.HTTPListener.Addr().String()).Msg("http listening")
		if err := s.HTTP.Serve(s.HTTPListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if s.Health != nil && s.HealthListener != nil {
		t.Go(func() error {
			s.Log.Info().Str("addr", s.HealthListener.Addr().String()).Msg("grpc health listening")
			return s.Health.Serve(s.HealthListener)
		})
	}
	t.Go(func() error {
		<-t.Dying()
		s.shutdown()
		return nil
	})

	err := t.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Server) shutdown() {
	timeout := s.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.Log.Info().Dur("timeout", timeout).Msg("shutting down")
	if s.Health != nil {
		s.Health.Shutdown()
	}
	if err := s.HTTP.Shutdown(ctx); err != nil {
		s.Log.Error().Err(err).Msg("http shutdown")
	}
}
