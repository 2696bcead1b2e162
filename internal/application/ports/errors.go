package ports

import "errors"

// Failure categories for the curation delegate boundary. Adapters wrap their
// concrete failures with one of these so the orchestrator can classify the
// degraded-mode cause without knowing transport details.
var (
	// ErrDelegateUnavailable network failure, timeout or non-2xx status.
	ErrDelegateUnavailable = errors.New("curation delegate unavailable")
	// ErrDelegateBadResponse payload unparseable or schema-invalid.
	ErrDelegateBadResponse = errors.New("curation delegate returned a bad response")
)
