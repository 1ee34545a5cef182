package notify

import "errors"

var (
	// ErrNotConfigured marks a dispatch skipped because no provider has
	// usable credentials. Treated like any other dispatch failure:
	// logged, never fatal.
	ErrNotConfigured = errors.New("notification provider not configured")
)
