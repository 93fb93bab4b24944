package testutil

import (
	"context"
	"sync"

	"portfolio-backend/internal/review"
)

// StubGenerator returns Text, or Err when set, and records what it was asked.
type StubGenerator struct {
	mu    sync.Mutex
	Text  string
	Err   error
	calls []review.Fields
}

func (g *StubGenerator) Generate(_ context.Context, f review.Fields) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls = append(g.calls, f)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Text, nil
}

func (g *StubGenerator) Calls() []review.Fields {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]review.Fields, len(g.calls))
	copy(out, g.calls)
	return out
}

// Fail makes later calls return err. Safe while a server is running.
func (g *StubGenerator) Fail(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Err = err
}
