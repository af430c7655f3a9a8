package serverset

import (
	"fmt"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// memberPrefix is the znode name prefix used for sequential member nodes.
const memberPrefix = "member_"

// Announcer registers a member in a serverset. The member znode is
// ephemeral, so it disappears with the ZooKeeper session and a crashed
// process drops out of the set without explicit cleanup.
type Announcer struct {
	conn   WriteConn
	logger kitlog.Logger
	root   string
	name   string
	path   string
}

// NewAnnouncer creates an announcer for the serverset rooted at root. If
// name is empty, a sequential member_ node is created on Announce, which
// is the usual serverset convention.
func NewAnnouncer(conn WriteConn, root, name string, logger kitlog.Logger) *Announcer {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	return &Announcer{
		conn:   conn,
		logger: logger,
		root:   root,
		name:   name,
	}
}

// Path returns the path of the announced znode, or an empty string if the
// member has not been announced.
func (a *Announcer) Path() string {
	return a.path
}

// Announce publishes the member under the serverset root, creating the
// root path first if it does not exist yet.
func (a *Announcer) Announce(m Member) error {
	data, err := EncodeMember(m)
	if err != nil {
		return err
	}

	if err := a.ensureRoot(); err != nil {
		return err
	}

	name, mode := a.name, ModeEphemeral
	if name == "" {
		name, mode = memberPrefix, ModeEphemeralSequential
	}

	path, err := a.conn.Create(a.root+"/"+name, data, mode)
	if err != nil {
		return fmt.Errorf("create member znode: %w", err)
	}

	a.path = path
	level.Info(a.logger).Log("msg", "member announced", "path", path, "endpoint", m.ServiceEndpoint)

	return nil
}

// Withdraw removes the announced znode. Calling it before Announce, or
// twice, is a no-op.
func (a *Announcer) Withdraw() error {
	if a.path == "" {
		return nil
	}

	if err := a.conn.Delete(a.path); err != nil {
		return fmt.Errorf("delete member znode: %w", err)
	}

	level.Info(a.logger).Log("msg", "member withdrawn", "path", a.path)
	a.path = ""

	return nil
}

// ensureRoot creates the root path one level at a time. Parents are
// persistent nodes: they must outlive the session of whoever happened to
// create them first.
func (a *Announcer) ensureRoot() error {
	var path strings.Builder

	for _, part := range strings.Split(strings.Trim(a.root, "/"), "/") {
		path.WriteString("/")
		path.WriteString(part)

		ok, err := a.conn.Exists(path.String())
		if err != nil {
			return fmt.Errorf("check %s: %w", path.String(), err)
		}

		if ok {
			continue
		}

		if _, err := a.conn.Create(path.String(), nil, ModePersistent); err != nil {
			// Losing a create race to another announcer is fine.
			if ok, err2 := a.conn.Exists(path.String()); err2 == nil && ok {
				continue
			}

			return fmt.Errorf("create %s: %w", path.String(), err)
		}
	}

	return nil
}
