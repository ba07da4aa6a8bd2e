package session

import (
	"sync"

	"github.com/kynelabs/dbsession/adapter"
)

// The process-wide default session exists for callers that want one shared
// handle without plumbing a reference around. Its identity is stable across
// callers, every state change on it is globally visible, and all access is
// serialized by the session's own mutex. Most code should hold an explicit
// *Session instead.

var (
	defaultMu      sync.Mutex
	defaultSession *Session
)

// Default returns the process-wide shared session, creating it on first
// access with no backend kind selected. Call SetMode before Connect.
func Default() *Session {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSession == nil {
		defaultSession = New(adapter.None)
	}
	return defaultSession
}

// Teardown disconnects and discards the process-wide session. Intended for
// process exit; a later Default call creates a fresh instance.
func Teardown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSession == nil {
		return
	}
	if defaultSession.IsConnected() {
		_ = defaultSession.Disconnect()
	}
	defaultSession = nil
}
