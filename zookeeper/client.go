// Package zookeeper adapts the go-zookeeper client to the capability
// interfaces the serverset package consumes.
package zookeeper

import (
	"fmt"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-zookeeper/zk"

	"github.com/discotech/discotech/serverset"
)

var (
	_ serverset.Conn      = (*Client)(nil)
	_ serverset.WriteConn = (*Client)(nil)
)

// Client wraps a ZooKeeper connection. The underlying client owns the
// session: it reconnects on its own and enforces the session timeout on
// individual calls.
type Client struct {
	conn *zk.Conn
}

// Connect dials the ensemble and blocks until a session is established or
// the session timeout expires. It returns an error instead of retrying,
// so the caller decides whether a failed bootstrap is fatal.
func Connect(addr string, sessionTimeout time.Duration, logger kitlog.Logger) (*Client, error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	conn, events, err := zk.Connect([]string{addr}, sessionTimeout, zk.WithLogger(&zkLogger{logger}))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	deadline := time.After(sessionTimeout)

	for {
		select {
		case ev := <-events:
			if ev.State == zk.StateHasSession {
				level.Debug(logger).Log("msg", "zookeeper session established", "addr", addr)
				return &Client{conn: conn}, nil
			}
		case <-deadline:
			conn.Close()
			return nil, fmt.Errorf("no zookeeper session to %s after %s", addr, sessionTimeout)
		}
	}
}

func (c *Client) Exists(path string) (bool, error) {
	ok, _, err := c.conn.Exists(path)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", path, err)
	}

	return ok, nil
}

func (c *Client) Children(path string) ([]string, error) {
	children, _, err := c.conn.Children(path)
	if err != nil {
		return nil, fmt.Errorf("children %s: %w", path, err)
	}

	return children, nil
}

func (c *Client) Get(path string) ([]byte, error) {
	data, _, err := c.conn.Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}

	return data, nil
}

func (c *Client) Create(path string, data []byte, mode serverset.CreateMode) (string, error) {
	created, err := c.conn.Create(path, data, int32(mode), zk.WorldACL(zk.PermAll))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	return created, nil
}

func (c *Client) Delete(path string) error {
	if err := c.conn.Delete(path, -1); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	return nil
}

// Close terminates the session. Ephemeral znodes created through this
// client are removed by the ensemble once the session ends.
func (c *Client) Close() {
	c.conn.Close()
}

// zkLogger feeds the zk client's internal messages into the kit logger.
type zkLogger struct {
	logger kitlog.Logger
}

func (l *zkLogger) Printf(format string, args ...interface{}) {
	level.Debug(l.logger).Log("msg", fmt.Sprintf(format, args...))
}
