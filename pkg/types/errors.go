package types

import "errors"

// Store lifecycle and lookup errors. Handlers wrap these with context via
// fmt.Errorf("...: %w", err); callers test them with errors.Is.
var (
	ErrStoreClosed   = errors.New("store is closed")
	ErrNotFound      = errors.New("not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrMissingField  = errors.New("missing required field")
	ErrLocationCycle = errors.New("location parent would create a cycle")
)

// Backup errors.
var (
	ErrInvalidBackup = errors.New("invalid backup file format")
)
