package session

// Store is the single source of truth for "who is logged in", surviving
// restarts of the console. Implementations hold one durable record under
// StorageKey; there is no per-operator keyspace.
//
// All three operations are synchronous from the caller's point of view.
// Restore never propagates a parse failure: a record that cannot be decoded,
// or decodes to an invalid Session, is deleted and reported as no session.
type Store interface {
	// Save serializes the session and overwrites any prior record.
	Save(session *Session) error

	// Restore reads the stored record. It returns (nil, nil) when no
	// usable session exists.
	Restore() (*Session, error)

	// Clear removes the stored record.
	Clear() error
}
