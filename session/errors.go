package session

import "errors"

// The error kinds a session can record. Query operations report failure
// through their sentinel return values; the kind and its cause are captured
// and retrievable via LastError, wrapped so that errors.Is matches.
var (
	// ErrNotConnected marks an operation that requires a live connection
	// issued while disconnected. Detected locally, never reaches the backend.
	ErrNotConnected = errors.New("session is not connected")

	// ErrConnection marks a failed connect or reconnect: malformed
	// descriptor, unreachable host, or authentication failure.
	ErrConnection = errors.New("connection failed")

	// ErrTransactionState marks begin/commit/rollback invoked in an illegal
	// transaction state. Detected locally.
	ErrTransactionState = errors.New("illegal transaction state")

	// ErrBackend marks SQL text the backend rejected or a server-side fault
	// mid-execution.
	ErrBackend = errors.New("backend execution failed")

	// ErrDecoding marks a raw datum that could not be mapped to any value
	// tag. Decoding is total over everything the adapters produce, so this
	// indicates a bug in the core rather than caller or backend misuse.
	ErrDecoding = errors.New("result decoding failed")
)
