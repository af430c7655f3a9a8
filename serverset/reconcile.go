package serverset

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log/level"

	"github.com/discotech/discotech/internal/multierror"
	"github.com/discotech/discotech/internal/set"
	"github.com/discotech/discotech/internal/telemetry"
)

// errRootMissing distinguishes "the serverset znode is not there" from
// transport failures. Either way the cycle leaves the view untouched:
// store unavailability does not mean the serverset is empty.
var errRootMissing = errors.New("serverset znode does not exist")

// reconcile runs a single cycle: list the member znodes, fetch and decode
// each, publish the alive ones, then prune entries whose znode is gone
// from the listing. A znode that fails to fetch or decode is skipped for
// the cycle: it is neither inserted nor removed, so a previously published
// record stays visible until a later cycle resolves it.
func (w *Watcher) reconcile() (err error) {
	start := time.Now()

	defer func() {
		telemetry.ObserveCycle(time.Since(start), err == nil)
		telemetry.SetMembers(w.registry.Len())
	}()

	ok, err := w.conn.Exists(w.rootPath)
	if err != nil {
		return fmt.Errorf("check %s: %w", w.rootPath, err)
	}

	if !ok {
		return fmt.Errorf("%w: %s", errRootMissing, w.rootPath)
	}

	children, err := w.conn.Children(w.rootPath)
	if err != nil {
		return fmt.Errorf("list children of %s: %w", w.rootPath, err)
	}

	listed := set.New(children...)

	var (
		wg   sync.WaitGroup
		sem  = make(chan struct{}, w.fetchConcurrency)
		errs = multierror.New[string]()
	)

	for _, name := range children {
		wg.Add(1)
		sem <- struct{}{}

		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := w.updateMember(name); err != nil {
				errs.Add(name, err)
			}
		}(name)
	}

	wg.Wait()

	// Prune members whose znode dropped out of the listing. Members that
	// are still listed are kept even if their fetch failed above.
	for _, id := range w.registry.ids() {
		if !listed.Has(id) {
			w.registry.remove(id)
			level.Info(w.logger).Log("msg", "member removed", "member", id)
		}
	}

	return errs.Combined()
}

// updateMember fetches and publishes a single member znode.
func (w *Watcher) updateMember(name string) error {
	path := w.rootPath + "/" + name

	// The znode may have been deleted between the listing and now. That is
	// not an error: the next cycle's listing will agree and prune it.
	ok, err := w.conn.Exists(path)
	if err != nil {
		telemetry.MemberFailure("exists")
		return fmt.Errorf("check %s: %w", path, err)
	}

	if !ok {
		return nil
	}

	data, err := w.conn.Get(path)
	if err != nil {
		telemetry.MemberFailure("fetch")
		return fmt.Errorf("fetch %s: %w", path, err)
	}

	member, err := DecodeMember(data)
	if err != nil {
		telemetry.MemberFailure("decode")
		return fmt.Errorf("decode %s: %w", path, err)
	}

	// Members in any other state are not published, but an already
	// published record is left alone here: removal happens only in the
	// prune step, keyed on the listing.
	if !member.IsAlive() {
		level.Debug(w.logger).Log("msg", "member not alive", "member", name, "status", member.Status)
		return nil
	}

	w.registry.upsert(name, member)
	level.Debug(w.logger).Log("msg", "member updated", "member", name, "endpoint", member.ServiceEndpoint)

	return nil
}
