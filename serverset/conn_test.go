package serverset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var errNoNode = errors.New("node does not exist")

// fakeConn is an in-memory coordination store for tests: a flat map from
// znode path to payload, with per-path error injection.
type fakeConn struct {
	mu          sync.Mutex
	nodes       map[string][]byte
	existsErr   map[string]error
	getErr      map[string]error
	childrenErr error

	// extraChildren are names appended to every listing without a backing
	// node, to simulate a child deleted between the listing and the fetch.
	extraChildren []string

	seq int
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		nodes:     make(map[string][]byte),
		existsErr: make(map[string]error),
		getErr:    make(map[string]error),
	}
}

func (f *fakeConn) put(path string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if data == nil {
		data = []byte{}
	}

	f.nodes[path] = data
}

func (f *fakeConn) del(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.nodes, path)
}

func (f *fakeConn) Exists(path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.existsErr[path]; err != nil {
		return false, err
	}

	_, ok := f.nodes[path]

	return ok, nil
}

func (f *fakeConn) Children(path string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.childrenErr != nil {
		return nil, f.childrenErr
	}

	if _, ok := f.nodes[path]; !ok {
		return nil, errNoNode
	}

	prefix := path + "/"
	children := make([]string, 0)

	for p := range f.nodes {
		if !strings.HasPrefix(p, prefix) {
			continue
		}

		name := strings.TrimPrefix(p, prefix)
		if !strings.Contains(name, "/") {
			children = append(children, name)
		}
	}

	children = append(children, f.extraChildren...)
	sort.Strings(children)

	return children, nil
}

func (f *fakeConn) Get(path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.getErr[path]; err != nil {
		return nil, err
	}

	data, ok := f.nodes[path]
	if !ok {
		return nil, errNoNode
	}

	return data, nil
}

func (f *fakeConn) Create(path string, data []byte, mode CreateMode) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if mode == ModeEphemeralSequential {
		path = fmt.Sprintf("%s%010d", path, f.seq)
		f.seq++
	}

	if _, ok := f.nodes[path]; ok {
		return "", fmt.Errorf("node %s already exists", path)
	}

	if data == nil {
		data = []byte{}
	}

	f.nodes[path] = data

	return path, nil
}

func (f *fakeConn) Delete(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.nodes[path]; !ok {
		return errNoNode
	}

	delete(f.nodes, path)

	return nil
}
