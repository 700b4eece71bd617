package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors or per-directive
// results.
//
//   - ErrNotFound: row does not exist
//   - ErrConflict: uniqueness constraint rejected the write
//   - ErrUnavailable: backing store or upstream unreachable
//   - ErrTimeout: operation exceeded its deadline
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
	ErrTimeout     = errors.New("timeout")
)
