package multierror

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Error combines multiple errors keyed by the item that produced them.
// It is safe to Add from concurrent goroutines.
type Error[T comparable] struct {
	mu     sync.Mutex
	errors map[T]error
}

// New creates an empty Error.
func New[T comparable]() *Error[T] {
	return &Error[T]{
		errors: make(map[T]error),
	}
}

// Add records an error under the given key.
func (m *Error[T]) Add(key T, err error) {
	m.mu.Lock()
	m.errors[key] = err
	m.mu.Unlock()
}

// Get returns the error recorded under the given key.
func (m *Error[T]) Get(key T) (error, bool) {
	if v := m.errors[key]; v != nil {
		return v, true
	}

	return nil, false
}

// Len returns the number of recorded errors.
func (m *Error[T]) Len() int {
	return len(m.errors)
}

// Error returns a stable string representation of all recorded errors.
func (m *Error[T]) Error() string {
	parts := make([]string, 0, len(m.errors))
	for k, v := range m.errors {
		parts = append(parts, fmt.Sprintf("%v: %s", k, v))
	}

	sort.Strings(parts)

	return strings.Join(parts, "; ")
}

// Unwrap returns the recorded errors so errors.Is works on the combined
// error.
func (m *Error[T]) Unwrap() []error {
	errs := make([]error, 0, len(m.errors))
	for _, v := range m.errors {
		errs = append(errs, v)
	}

	return errs
}

// Combined returns the Error if it contains any errors, nil otherwise.
func (m *Error[T]) Combined() error {
	if len(m.errors) == 0 {
		return nil
	}

	return m
}
