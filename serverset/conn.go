package serverset

// Conn is the read capability the watcher needs from the coordination
// store: existence checks, child listings, and node data reads. Session
// management, reconnects, and call timeouts belong to the implementation.
type Conn interface {
	Exists(path string) (bool, error)
	Children(path string) ([]string, error)
	Get(path string) ([]byte, error)
}

// CreateMode controls how a znode is created. The values match the
// ZooKeeper create flags.
type CreateMode int32

const (
	ModePersistent          CreateMode = 0
	ModeEphemeral           CreateMode = 1
	ModeEphemeralSequential CreateMode = 3
)

// WriteConn extends Conn with the mutations the announcer needs. The
// watcher itself never writes.
type WriteConn interface {
	Conn

	// Create makes a znode and returns its actual path, which differs
	// from the requested one for sequential nodes.
	Create(path string, data []byte, mode CreateMode) (string, error)

	Delete(path string) error
}
