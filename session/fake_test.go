package session

import (
	"context"
	"sync"

	"github.com/kynelabs/dbsession/adapter"
)

// fakeAdapter is a scriptable in-memory backend. It counts every dial and
// backend call so tests can assert that locally-rejected operations never
// reach the backend.
type fakeAdapter struct {
	mu      sync.Mutex
	openErr error
	dials   int
	conns   []*fakeConn
	lastDSN adapter.Descriptor
}

func (f *fakeAdapter) Kind() adapter.Kind { return adapter.Postgres }

func (f *fakeAdapter) Open(_ context.Context, desc adapter.Descriptor) (adapter.Conn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dials++
	f.lastDSN = desc
	if f.openErr != nil {
		return nil, f.openErr
	}
	c := &fakeConn{}
	f.conns = append(f.conns, c)
	return c, nil
}

func (f *fakeAdapter) backendCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.dials
	for _, c := range f.conns {
		n += c.calls()
	}
	return n
}

func (f *fakeAdapter) conn(i int) *fakeConn {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conns[i]
}

type fakeConn struct {
	mu      sync.Mutex
	execFn  func(ctx context.Context, query string) (int64, error)
	queryFn func(ctx context.Context, query string) ([]adapter.RawRow, error)
	pingErr error
	stmts   []string
	pings   int
	closed  bool
}

func (c *fakeConn) Ping(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pings++
	return c.pingErr
}

func (c *fakeConn) Exec(ctx context.Context, query string) (int64, error) {
	c.mu.Lock()
	fn := c.execFn
	c.stmts = append(c.stmts, query)
	c.mu.Unlock()
	if fn != nil {
		return fn(ctx, query)
	}
	return 1, nil
}

func (c *fakeConn) Query(ctx context.Context, query string) ([]adapter.RawRow, error) {
	c.mu.Lock()
	fn := c.queryFn
	c.stmts = append(c.stmts, query)
	c.mu.Unlock()
	if fn != nil {
		return fn(ctx, query)
	}
	return []adapter.RawRow{}, nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stmts) + c.pings
}

func (c *fakeConn) statements() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.stmts))
	copy(out, c.stmts)
	return out
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

const testDescriptor = "host=localhost port=5432 dbname=testdb user=tester password=pw"

func newConnected(t interface{ Fatalf(string, ...any) }) (*Session, *fakeAdapter) {
	fa := &fakeAdapter{}
	s := NewWithAdapter(fa)
	if err := s.Connect(context.Background(), testDescriptor); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return s, fa
}
