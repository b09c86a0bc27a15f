package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"musicgraph/db"
	"musicgraph/model"
)

// MockStore implements db.GraphStore for testing.
type MockStore struct {
	QueryFunc       func(ctx context.Context, dest interface{}, query string, params db.Params) error
	ExecFunc        func(ctx context.Context, query string, params db.Params) (int64, error)
	ExistsFunc      func(ctx context.Context, collection model.Collection, key string) (bool, error)
	TransactionFunc func(ctx context.Context, fn func(tx db.GraphStore) error) error

	mu    sync.Mutex
	execs []ExecCall
}

// ExecCall records one statement sent through Exec.
type ExecCall struct {
	Query  string
	Params db.Params
}

func (m *MockStore) Query(ctx context.Context, dest interface{}, query string, params db.Params) error {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, dest, query, params)
	}
	return nil
}

func (m *MockStore) Exec(ctx context.Context, query string, params db.Params) (int64, error) {
	m.mu.Lock()
	m.execs = append(m.execs, ExecCall{Query: query, Params: params})
	m.mu.Unlock()
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, query, params)
	}
	return 1, nil
}

func (m *MockStore) Exists(ctx context.Context, collection model.Collection, key string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, collection, key)
	}
	return false, nil
}

func (m *MockStore) Transaction(ctx context.Context, fn func(tx db.GraphStore) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(m)
}

// Execs returns the recorded statements in order.
func (m *MockStore) Execs() []ExecCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecCall(nil), m.execs...)
}

// ExecsContaining filters the recorded statements by a SQL fragment.
func (m *MockStore) ExecsContaining(fragment string) []ExecCall {
	var out []ExecCall
	for _, c := range m.Execs() {
		if strings.Contains(c.Query, fragment) {
			out = append(out, c)
		}
	}
	return out
}

// existing builds an ExistsFunc from "collection/key" references.
func existing(refs ...string) func(ctx context.Context, collection model.Collection, key string) (bool, error) {
	set := make(map[string]bool, len(refs))
	for _, r := range refs {
		set[r] = true
	}
	return func(ctx context.Context, collection model.Collection, key string) (bool, error) {
		return set[collection.Ref(key)], nil
	}
}

var errUnexpectedQuery = errors.New("unexpected query")

// fill copies rows into dest, which must be a pointer to a slice of the same type.
func fill[T any](dest interface{}, rows ...T) error {
	p, ok := dest.(*[]T)
	if !ok {
		return fmt.Errorf("dest is %T, want *[]%T", dest, *new(T))
	}
	*p = append((*p)[:0], rows...)
	return nil
}
