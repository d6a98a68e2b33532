package app

import (
	"context"
	"log/slog"
	"sync"
)

// InitFunc is the externally supplied startup routine. Schema and index setup
// belongs to the database collaborator that provides it.
type InitFunc func(ctx context.Context) error

// Closer is a named teardown step.
type Closer struct {
	Name  string
	Close func(ctx context.Context) error
}

// Lifecycle binds startup and teardown to the process lifetime: Startup runs
// once after boot, Close runs exactly once on shutdown.
type Lifecycle struct {
	init    InitFunc
	closers []Closer
	once    sync.Once
}

func NewLifecycle(init InitFunc, closers ...Closer) *Lifecycle {
	return &Lifecycle{init: init, closers: closers}
}

// Startup runs the initialization routine. A failure is logged and swallowed
// so the server stays reachable for health probes while the database is down;
// readiness keeps reporting unhealthy until it recovers.
func (l *Lifecycle) Startup(ctx context.Context) {
	if l.init == nil {
		return
	}
	if err := l.init(ctx); err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return
	}
	slog.Info("Startup initialization complete")
}

// Close releases resources in reverse registration order. Repeated calls are
// no-ops; teardown runs whatever the startup outcome was.
func (l *Lifecycle) Close(ctx context.Context) {
	l.once.Do(func() {
		for i := len(l.closers) - 1; i >= 0; i-- {
			c := l.closers[i]
			if err := c.Close(ctx); err != nil {
				slog.Error("Failed to close resource", "resource", c.Name, "error", err)
				continue
			}
			slog.Info("Resource closed", "resource", c.Name)
		}
	})
}
