package charts

import (
	"context"
	"fmt"
	"sync"
)

// Gate is a one-time readiness gate for the charting collaborator: a single
// shared handle created once per run and awaited by any consumer that needs
// aggregates drawn. It resolves exactly once and never un-resolves; there
// are no retries and no timeout of its own. A collaborator that never
// signals is visible only as the handoff never completing.
type Gate struct {
	once  sync.Once
	ready chan struct{}
}

// NewGate returns an unresolved Gate.
func NewGate() *Gate {
	return &Gate{ready: make(chan struct{})}
}

// Signal resolves the gate. Subsequent calls are no-ops.
func (g *Gate) Signal() {
	g.once.Do(func() { close(g.ready) })
}

// Ready returns a channel that is closed once the gate has resolved.
func (g *Gate) Ready() <-chan struct{} {
	return g.ready
}

// Wait blocks until the gate resolves or ctx ends.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Handoff waits for the collaborator to become ready, then feeds it every
// drawable dataset. Missing datasets are still passed through so the
// renderer can show its data-missing state; zero-total datasets are
// skipped entirely.
func Handoff(ctx context.Context, gate *Gate, r Renderer, datasets ...Dataset) error {
	if err := gate.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for chart renderer: %w", err)
	}

	for _, d := range datasets {
		if !d.Missing && len(d.Points) == 0 {
			continue
		}
		if err := r.Draw(d); err != nil {
			return fmt.Errorf("drawing %q: %w", d.Title, err)
		}
	}

	return nil
}
