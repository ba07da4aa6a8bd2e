// Package session implements the connection session at the heart of the
// client core: it owns one physical database connection, tracks transaction
// state, dispatches opaque SQL text through a backend adapter, and decodes
// row results into typed container values.
//
// A Session serializes all operations through an internal mutex, so a single
// instance may be shared by multiple goroutines, but at most one operation
// executes on its connection at any instant. For parallel throughput, give
// each worker its own Session.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kynelabs/dbsession/adapter"
	"github.com/kynelabs/dbsession/internal/debug"
)

// Status is the connection status of a session.
type Status int

const (
	// Disconnected means no live connection. Every session starts here.
	Disconnected Status = iota
	// Connected means the session owns a live backend connection.
	Connected
	// Reconnecting is the transient status while Reconnect re-dials.
	Reconnecting
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DefaultTimeout bounds backend round trips when the caller's context
// carries no deadline.
const DefaultTimeout = 30 * time.Second

// Session owns the lifecycle of exactly one logical database connection.
type Session struct {
	mu      sync.Mutex
	kind    adapter.Kind
	ad      adapter.Adapter
	conn    adapter.Conn
	status  Status
	inTx    bool
	desc    adapter.Descriptor
	hasDesc bool
	lastErr error
	timeout time.Duration
}

// Option configures a Session at construction.
type Option func(*Session)

// WithTimeout sets the per-operation timeout budget applied when the
// caller's context has no deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// New returns a disconnected session for the given backend kind. The kind
// may be adapter.None and set later with SetMode.
func New(kind adapter.Kind, opts ...Option) *Session {
	s := &Session{kind: kind, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewWithAdapter returns a disconnected session bound to a specific adapter
// implementation instead of one resolved from a kind.
func NewWithAdapter(ad adapter.Adapter, opts ...Option) *Session {
	s := New(ad.Kind(), opts...)
	s.ad = ad
	return s
}

// SetMode selects the backend kind. It fails while a connection is live.
func (s *Session) SetMode(kind adapter.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Connected {
		return fmt.Errorf("cannot change backend kind while connected")
	}
	s.kind = kind
	s.ad = nil
	return nil
}

// adapterLocked returns the session's adapter, resolving it from the kind
// on first use. Callers hold s.mu.
func (s *Session) adapterLocked() (adapter.Adapter, error) {
	if s.ad != nil {
		return s.ad, nil
	}
	ad, err := adapter.ForKind(s.kind)
	if err != nil {
		return nil, err
	}
	s.ad = ad
	return ad, nil
}

// Connect establishes a connection to the database named by the descriptor,
// a space-separated key=value string (host, port, dbname, user, password).
// A malformed descriptor fails without any network round trip. Connecting
// while already connected first tears down the prior connection. On success
// the session is Connected and its transaction state is reset.
func (s *Session) Connect(ctx context.Context, descriptor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad, err := s.adapterLocked()
	if err != nil {
		return s.fail(fmt.Errorf("%w: %v", ErrConnection, err))
	}
	desc, err := adapter.ParseDescriptor(descriptor)
	if err != nil {
		return s.fail(fmt.Errorf("%w: %v", ErrConnection, err))
	}

	if s.status == Connected {
		s.teardownLocked()
	}

	ctx, cancel := s.budget(ctx)
	defer cancel()

	conn, err := ad.Open(ctx, desc)
	if err != nil {
		s.status = Disconnected
		return s.fail(fmt.Errorf("%w: %v", ErrConnection, err))
	}

	s.conn = conn
	s.status = Connected
	s.inTx = false
	s.desc = desc
	s.hasDesc = true
	debug.Debug("session connected", "kind", s.kind.String(), "descriptor", desc.Redacted())
	return nil
}

// Disconnect closes the connection. It fails if the session is already
// disconnected, so double-disconnect bugs are detectable. An active
// transaction is implicitly rolled back by the backend when the connection
// drops; transaction state resets to idle.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Connected {
		return s.fail(fmt.Errorf("%w: disconnect", ErrNotConnected))
	}
	if s.inTx {
		debug.Warn("disconnecting with an active transaction; backend will roll it back")
	}
	s.teardownLocked()
	debug.Debug("session disconnected", "kind", s.kind.String())
	return nil
}

// Reconnect tears down any live connection and dials again with the
// descriptor from the last Connect. It fails if no prior descriptor exists
// or the new attempt fails.
func (s *Session) Reconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasDesc {
		return s.fail(fmt.Errorf("%w: no prior connection descriptor", ErrConnection))
	}
	ad, err := s.adapterLocked()
	if err != nil {
		return s.fail(fmt.Errorf("%w: %v", ErrConnection, err))
	}

	if s.status == Connected {
		s.teardownLocked()
	}
	s.status = Reconnecting

	ctx, cancel := s.budget(ctx)
	defer cancel()

	conn, err := ad.Open(ctx, s.desc)
	if err != nil {
		s.status = Disconnected
		return s.fail(fmt.Errorf("%w: %v", ErrConnection, err))
	}
	s.conn = conn
	s.status = Connected
	s.inTx = false
	debug.Debug("session reconnected", "kind", s.kind.String(), "descriptor", s.desc.Redacted())
	return nil
}

// TestConnection reports whether the connection answers a lightweight round
// trip. It never returns an error and does not touch transaction state;
// backend failures are captured and reported as unhealthy.
func (s *Session) TestConnection(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Connected {
		return false
	}
	ctx, cancel := s.budget(ctx)
	defer cancel()
	if err := s.conn.Ping(ctx); err != nil {
		s.lastErr = fmt.Errorf("%w: health check: %v", ErrBackend, err)
		debug.Debug("health check failed", "error", err)
		return false
	}
	return true
}

// IsConnected reports whether the session holds a live connection.
func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == Connected
}

// Status returns the current connection status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Kind returns the selected backend kind.
func (s *Session) Kind() adapter.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

// InTransaction reports whether a transaction is active.
func (s *Session) InTransaction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inTx
}

// LastError returns the most recent failure recorded by this session, or
// nil. The returned error wraps one of the package sentinel errors, so
// callers can classify it with errors.Is.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// teardownLocked closes and forgets the live connection and resets the
// transaction state. Callers hold s.mu.
func (s *Session) teardownLocked() {
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			debug.Warn("closing connection", "error", err)
		}
		s.conn = nil
	}
	s.status = Disconnected
	s.inTx = false
}

// fail records err as the session's last error and returns it.
func (s *Session) fail(err error) error {
	s.lastErr = err
	debug.Debug("operation failed", "error", err)
	return err
}

// budget derives a deadline-bearing context when the caller supplied none.
func (s *Session) budget(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
