package serverset

import (
	"sync"

	"github.com/discotech/discotech/internal/generic"
)

// Registry is the published membership view. Any number of goroutines may
// read it at any time; only the reconciliation cycle mutates it. The lock
// is scoped to individual calls, never to a whole cycle, so a reader that
// interleaves with a running cycle may observe some of that cycle's
// changes and not others.
type Registry struct {
	mut     sync.RWMutex
	members map[string]Member
}

func NewRegistry() *Registry {
	return &Registry{
		members: make(map[string]Member),
	}
}

// Snapshot returns a copy of the current membership view, keyed by member
// znode name. The returned map is owned by the caller.
func (r *Registry) Snapshot() map[string]Member {
	r.mut.RLock()
	defer r.mut.RUnlock()

	snapshot := make(map[string]Member, len(r.members))
	generic.MapCopy(r.members, snapshot)

	return snapshot
}

// Member returns the record published under the given znode name.
func (r *Registry) Member(id string) (Member, bool) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	m, ok := r.members[id]

	return m, ok
}

// Len returns the number of published members.
func (r *Registry) Len() int {
	r.mut.RLock()
	defer r.mut.RUnlock()

	return len(r.members)
}

func (r *Registry) upsert(id string, m Member) {
	r.mut.Lock()
	defer r.mut.Unlock()

	r.members[id] = m
}

func (r *Registry) remove(id string) {
	r.mut.Lock()
	defer r.mut.Unlock()

	delete(r.members, id)
}

func (r *Registry) ids() []string {
	r.mut.RLock()
	defer r.mut.RUnlock()

	return generic.MapKeys(r.members)
}
