package store

import "errors"

// ErrStoreUnavailable marks failures to open, bootstrap, or write to the
// backing database. Callers match it with errors.Is to tell a persistence
// outage apart from malformed data.
var ErrStoreUnavailable = errors.New("threat store unavailable")
