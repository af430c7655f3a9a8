package serverset

import (
	"context"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tilinna/clock"
)

// Watcher maintains the live membership view of one serverset by polling
// its znode at a fixed interval and reconciling the Registry with what is
// found there.
type Watcher struct {
	conn             Conn
	registry         *Registry
	logger           kitlog.Logger
	rootPath         string
	pollInterval     time.Duration
	fetchConcurrency int
}

// New creates a Watcher over an established coordination-store connection.
// Obtaining the connection is the caller's responsibility, so a process
// that cannot reach the store decides its own startup policy.
func New(conn Conn, conf Config) *Watcher {
	logger := conf.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	concurrency := conf.FetchConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &Watcher{
		conn:             conn,
		registry:         NewRegistry(),
		logger:           logger,
		rootPath:         conf.RootPath,
		pollInterval:     conf.PollInterval,
		fetchConcurrency: concurrency,
	}
}

// Registry returns the membership view the watcher maintains. It is safe
// to hand out to any number of concurrent readers.
func (w *Watcher) Registry() *Registry {
	return w.registry
}

// Run polls the serverset until ctx is canceled. The first cycle starts
// immediately. Cycles never overlap: a slow cycle delays the next tick
// rather than running alongside it. A failed cycle is logged and the next
// one starts over from the listing, which is also the only retry policy.
func (w *Watcher) Run(ctx context.Context) {
	clck := clock.FromContext(ctx)

	if err := w.reconcile(); err != nil {
		level.Error(w.logger).Log("msg", "reconciliation failed", "err", err)
	}

	ticker := clck.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.reconcile(); err != nil {
				level.Error(w.logger).Log("msg", "reconciliation failed", "err", err)
			}
		}
	}
}
