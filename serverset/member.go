// Package serverset maintains a live, in-memory view of the members of a
// service registered in a ZooKeeper serverset. The view is refreshed by
// polling the serverset znode at a fixed interval rather than subscribing
// to watches, so staleness is bounded by the poll interval.
package serverset

import (
	"fmt"
)

// Status is the lifecycle state a member advertises in its znode payload.
// Only StatusAlive members are published to consumers.
type Status string

const (
	StatusDead     Status = "DEAD"
	StatusStarting Status = "STARTING"
	StatusAlive    Status = "ALIVE"
	StatusStopping Status = "STOPPING"
	StatusStopped  Status = "STOPPED"
	StatusWarning  Status = "WARNING"
)

// Endpoint is a single host:port a member serves on.
type Endpoint struct {
	Host string `json:"host"`
	Port uint16 `json:"port"`
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// Member is the record stored in a member znode: the primary endpoint the
// service answers on, optional named auxiliary endpoints (admin, debug),
// and the advertised status. Records are identified by the name of their
// znode, not by anything inside the record itself.
type Member struct {
	ServiceEndpoint     Endpoint            `json:"serviceEndpoint"`
	AdditionalEndpoints map[string]Endpoint `json:"additionalEndpoints"`
	Status              Status              `json:"status"`
}

// IsAlive returns true if the member advertises itself as routable.
func (m *Member) IsAlive() bool {
	return m.Status == StatusAlive
}
