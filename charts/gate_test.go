package charts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	drawn []Dataset
	err   error
}

func (r *recordingRenderer) Draw(d Dataset) error {
	r.drawn = append(r.drawn, d)
	return r.err
}

func TestGate_SignalIdempotent(t *testing.T) {
	g := NewGate()

	select {
	case <-g.Ready():
		t.Fatal("gate resolved before Signal")
	default:
	}

	g.Signal()
	g.Signal() // second resolve must not panic

	select {
	case <-g.Ready():
	default:
		t.Fatal("gate not resolved after Signal")
	}
}

func TestGate_WaitContext(t *testing.T) {
	g := NewGate()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := g.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	g.Signal()
	require.NoError(t, g.Wait(context.Background()))
}

func TestHandoff(t *testing.T) {
	g := NewGate()
	g.Signal()

	r := &recordingRenderer{}
	datasets := []Dataset{
		{Title: "calories", Points: []Point{{Label: "Carbs: 40 - 16%", Value: 40}}},
		{Title: "empty"}, // zero-total: skipped entirely
		{Title: "grams", Missing: true}, // missing: passed through
	}

	err := Handoff(context.Background(), g, r, datasets...)
	require.NoError(t, err)

	require.Len(t, r.drawn, 2)
	assert.Equal(t, "calories", r.drawn[0].Title)
	assert.Equal(t, "grams", r.drawn[1].Title)
	assert.True(t, r.drawn[1].Missing)
}

func TestHandoff_WaitsForGate(t *testing.T) {
	g := NewGate()
	r := &recordingRenderer{}

	done := make(chan error, 1)
	go func() {
		done <- Handoff(context.Background(), g, r, Dataset{Title: "x", Missing: true})
	}()

	select {
	case <-done:
		t.Fatal("handoff completed before gate resolved")
	case <-time.After(10 * time.Millisecond):
	}

	g.Signal()
	require.NoError(t, <-done)
	assert.Len(t, r.drawn, 1)
}

func TestHandoff_RendererError(t *testing.T) {
	g := NewGate()
	g.Signal()

	r := &recordingRenderer{err: errors.New("canvas gone")}
	err := Handoff(context.Background(), g, r, Dataset{Title: "x", Missing: true})
	assert.ErrorContains(t, err, "canvas gone")
}
