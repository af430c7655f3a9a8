package serverset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, 0, r.Len())

	m := Member{ServiceEndpoint: Endpoint{Host: "h1", Port: 1}, Status: StatusAlive}
	r.upsert("a", m)

	got, ok := r.Member("a")
	require.True(t, ok)
	require.Equal(t, m, got)
	require.Equal(t, 1, r.Len())

	r.remove("a")

	_, ok = r.Member("a")
	require.False(t, ok)
	require.Equal(t, 0, r.Len())
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	r.upsert("a", Member{ServiceEndpoint: Endpoint{Host: "h1", Port: 1}, Status: StatusAlive})

	snapshot := r.Snapshot()
	require.Len(t, snapshot, 1)

	delete(snapshot, "a")
	snapshot["b"] = Member{}

	_, ok := r.Member("a")
	assert.True(t, ok)
	assert.Equal(t, 1, r.Len())
}
