package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/MikeMC777/shop-demo/internal/probe"
)

func TestRun_ServesUntilCancelled(t *testing.T) {
	httpLis, healthLis, err := Listen("127.0.0.1:0", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &Server{
		HTTP: &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})},
		HTTPListener:    httpLis,
		Health:          probe.NewHealth("test"),
		HealthListener:  healthLis,
		ShutdownTimeout: time.Second,
		Log:             zerolog.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	res, err := http.Get("http://" + httpLis.Addr().String() + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("body=%q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("run did not stop")
	}
}

func TestRun_ListenerFailure(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_ = lis.Close()

	s := &Server{
		HTTP:         &http.Server{Handler: http.NotFoundHandler()},
		HTTPListener: lis,
		Log:          zerolog.Nop(),
	}
	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected serve error on closed listener")
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("run did not return")
	}
}
