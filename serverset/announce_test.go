package serverset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncer_NamedMember(t *testing.T) {
	conn := newFakeConn()

	a := NewAnnouncer(conn, testRoot, "web-1", nil)

	member := Member{
		ServiceEndpoint: Endpoint{Host: "h1", Port: 1},
		Status:          StatusAlive,
	}

	require.NoError(t, a.Announce(member))
	require.Equal(t, testRoot+"/web-1", a.Path())

	// Parents are created along the way.
	ok, err := conn.Exists("/services")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := conn.Get(testRoot + "/web-1")
	require.NoError(t, err)

	decoded, err := DecodeMember(data)
	require.NoError(t, err)
	require.Equal(t, member, decoded)
}

func TestAnnouncer_SequentialMember(t *testing.T) {
	conn := newFakeConn()

	a := NewAnnouncer(conn, testRoot, "", nil)
	b := NewAnnouncer(conn, testRoot, "", nil)

	member := Member{
		ServiceEndpoint: Endpoint{Host: "h1", Port: 1},
		Status:          StatusAlive,
	}

	require.NoError(t, a.Announce(member))
	require.NoError(t, b.Announce(member))

	assert.Equal(t, testRoot+"/member_0000000000", a.Path())
	assert.Equal(t, testRoot+"/member_0000000001", b.Path())
}

func TestAnnouncer_Withdraw(t *testing.T) {
	conn := newFakeConn()

	a := NewAnnouncer(conn, testRoot, "web-1", nil)

	require.NoError(t, a.Announce(Member{
		ServiceEndpoint: Endpoint{Host: "h1", Port: 1},
		Status:          StatusAlive,
	}))

	require.NoError(t, a.Withdraw())
	require.Equal(t, "", a.Path())

	ok, err := conn.Exists(testRoot + "/web-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// A second withdraw is a no-op.
	require.NoError(t, a.Withdraw())
}

func TestAnnouncer_WatcherSeesAnnouncedMember(t *testing.T) {
	conn := newFakeConn()

	a := NewAnnouncer(conn, testRoot, "web-1", nil)
	require.NoError(t, a.Announce(Member{
		ServiceEndpoint: Endpoint{Host: "h1", Port: 1},
		Status:          StatusAlive,
	}))

	w := newTestWatcher(t, conn)
	require.NoError(t, w.reconcile())

	got, ok := w.Registry().Member("web-1")
	require.True(t, ok)
	require.Equal(t, Endpoint{Host: "h1", Port: 1}, got.ServiceEndpoint)
}
