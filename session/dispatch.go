package session

import (
	"context"
	"fmt"

	"github.com/kynelabs/dbsession/container"
	"github.com/kynelabs/dbsession/internal/debug"
)

// The five query operations share one contract: SQL text is an opaque
// payload handed to the backend adapter, every operation fails locally in
// O(1) when the session is disconnected, and failure is reported through
// the operation's sentinel return value (false, 0, or nil) while the cause
// is recorded for LastError.

// CreateQuery executes a schema (DDL) statement and reports success.
func (s *Session) CreateQuery(ctx context.Context, query string) bool {
	_, err := s.exec(ctx, query)
	return err == nil
}

// InsertQuery executes an INSERT and returns the number of rows inserted,
// or 0 on failure.
func (s *Session) InsertQuery(ctx context.Context, query string) uint64 {
	return s.countExec(ctx, query)
}

// UpdateQuery executes an UPDATE and returns the number of rows matched,
// or 0 on failure.
func (s *Session) UpdateQuery(ctx context.Context, query string) uint64 {
	return s.countExec(ctx, query)
}

// DeleteQuery executes a DELETE and returns the number of rows deleted,
// or 0 on failure.
func (s *Session) DeleteQuery(ctx context.Context, query string) uint64 {
	return s.countExec(ctx, query)
}

// SelectQuery executes a read and returns its decoded result. A query
// matching zero rows returns a present, empty Result; any failure returns
// nil. The two are distinct: nil means the query did not produce a result.
func (s *Session) SelectQuery(ctx context.Context, query string) *container.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Connected {
		s.fail(fmt.Errorf("%w: select", ErrNotConnected))
		return nil
	}

	ctx, cancel := s.budget(ctx)
	defer cancel()

	raw, err := s.conn.Query(ctx, query)
	if err != nil {
		s.backendFail(ctx, err)
		return nil
	}

	res, err := marshalRows(raw)
	if err != nil {
		s.fail(fmt.Errorf("%w: %v", ErrDecoding, err))
		return nil
	}
	return res
}

func (s *Session) countExec(ctx context.Context, query string) uint64 {
	n, err := s.exec(ctx, query)
	if err != nil || n < 0 {
		return 0
	}
	return uint64(n)
}

func (s *Session) exec(ctx context.Context, query string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Connected {
		return 0, s.fail(fmt.Errorf("%w: execute", ErrNotConnected))
	}

	ctx, cancel := s.budget(ctx)
	defer cancel()

	n, err := s.conn.Exec(ctx, query)
	if err != nil {
		return 0, s.backendFail(ctx, err)
	}
	return n, nil
}

// backendFail records a backend-side failure. When the operation's context
// has expired, the physical connection may have a response in flight and
// cannot be reused safely, so it is torn down. Callers hold s.mu.
func (s *Session) backendFail(ctx context.Context, err error) error {
	wrapped := fmt.Errorf("%w: %v", ErrBackend, err)
	if ctx.Err() != nil {
		debug.Warn("operation deadline expired; tearing down connection", "error", err)
		s.teardownLocked()
	}
	return s.fail(wrapped)
}
