package worker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type loop interface {
	Run(ctx context.Context) error
}

// Group runs the background loops until Stop is called.
type Group struct {
	loops  []loop
	cancel context.CancelFunc
	eg     *errgroup.Group
}

func NewGroup(relay *OutboxRelay, janitor *IdempotencyJanitor) *Group {
	g := &Group{}
	if relay != nil {
		g.loops = append(g.loops, relay)
	}
	if janitor != nil {
		g.loops = append(g.loops, janitor)
	}
	return g
}

func (g *Group) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)
	for _, l := range g.loops {
		eg.Go(func() error { return l.Run(ctx) })
	}
	g.cancel = cancel
	g.eg = eg
	slog.Info("background workers started", slog.Int("count", len(g.loops)))
}

func (g *Group) Stop(ctx context.Context) error {
	if g.cancel == nil {
		return nil
	}
	g.cancel()

	done := make(chan error, 1)
	go func() { done <- g.eg.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
