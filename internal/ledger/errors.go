package ledger

import "errors"

var (
	// ErrAlreadyCommitted means the date was already folded into the
	// budget; the commit had no effect.
	ErrAlreadyCommitted = errors.New("ledger: day already committed")
	// ErrNotConfigured means a commit was attempted before any budget
	// was set up.
	ErrNotConfigured = errors.New("ledger: budget not configured")
	// ErrNotFound means an edit/delete referenced an unknown entry id.
	// Callers treat it as a silent no-op; it exists for tests and for
	// surfaces that want to report it.
	ErrNotFound = errors.New("ledger: entry not found")
)
