// Package latency injects the artificial backing-store delay the demo services model.
package latency

import (
	"context"
	"math/rand/v2"
	"time"
)

type Simulator struct {
	// Max bounds the delay; the wait is uniform in [0, Max). Zero disables it.
	Max time.Duration

	rnd func(n int64) int64
}

func New(maxDelay time.Duration) *Simulator {
	return &Simulator{Max: maxDelay}
}

// Next draws the next delay without waiting.
func (s *Simulator) Next() time.Duration {
	if s == nil || s.Max <= 0 {
		return 0
	}
	rnd := s.rnd
	if rnd == nil {
		rnd = rand.Int64N
	}
	return time.Duration(rnd(int64(s.Max)))
}

// Wait blocks for a random delay or until ctx is done.
func (s *Simulator) Wait(ctx context.Context) error {
	d := s.Next()
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
