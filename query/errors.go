package query

import "errors"

// Common query errors.
var (
	// ErrUnknownResource is returned when a query names a resource that
	// was never interned by the store. It is safe to retry after the
	// caller corrects the name; the store is immutable and unaffected.
	ErrUnknownResource = errors.New("unknown resource")
)
