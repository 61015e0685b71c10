package catalog

import "errors"

var (
	// ErrNotFound means the query ran fine but matched no row.
	ErrNotFound = errors.New("phone not found")

	// ErrStoreUnavailable means the remote catalog kept failing after the
	// configured retry budget. Distinct from an empty result set.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)
