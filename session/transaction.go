package session

import (
	"context"
	"fmt"
)

// Transaction control issues the backend's literal transaction statements on
// the session's pinned connection, so every query between begin and the
// matching commit/rollback runs on the same physical connection. The state
// machine has two states, idle and active; illegal transitions fail locally
// without contacting the backend.

const (
	beginStmt    = "BEGIN"
	commitStmt   = "COMMIT"
	rollbackStmt = "ROLLBACK"
)

// BeginTransaction starts a transaction. It fails if the session is not
// connected or a transaction is already active.
func (s *Session) BeginTransaction(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Connected {
		return s.fail(fmt.Errorf("%w: begin transaction", ErrNotConnected))
	}
	if s.inTx {
		return s.fail(fmt.Errorf("%w: transaction already active", ErrTransactionState))
	}
	if err := s.txExec(ctx, beginStmt); err != nil {
		return err
	}
	s.inTx = true
	return nil
}

// CommitTransaction commits the active transaction. It fails if no
// transaction is active.
func (s *Session) CommitTransaction(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inTx {
		return s.fail(fmt.Errorf("%w: commit without active transaction", ErrTransactionState))
	}
	if err := s.txExec(ctx, commitStmt); err != nil {
		return err
	}
	s.inTx = false
	return nil
}

// RollbackTransaction rolls back the active transaction. It fails if no
// transaction is active.
func (s *Session) RollbackTransaction(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inTx {
		return s.fail(fmt.Errorf("%w: rollback without active transaction", ErrTransactionState))
	}
	if err := s.txExec(ctx, rollbackStmt); err != nil {
		return err
	}
	s.inTx = false
	return nil
}

// txExec runs one transaction-control statement. Callers hold s.mu and have
// verified the transition is legal.
func (s *Session) txExec(ctx context.Context, stmt string) error {
	ctx, cancel := s.budget(ctx)
	defer cancel()
	if _, err := s.conn.Exec(ctx, stmt); err != nil {
		return s.backendFail(ctx, err)
	}
	return nil
}
