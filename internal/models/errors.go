package models

import "errors"

// Error kinds surfaced by the store, the recording service and the analytics engine.
// They are always wrapped with context, callers match with errors.Is.
var (
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrInvalidStatus        = errors.New("invalid attendance status")
	ErrNotScheduled         = errors.New("drill is not scheduled in session")
	ErrInvalidTally         = errors.New("invalid tally")
	ErrSchemaIncompatible   = errors.New("schema incompatible")
	ErrStoreUnavailable     = errors.New("store unavailable")

	ErrNotFound      = errors.New("not found")
	ErrDuplicateSlot = errors.New("sequence number already used in session")
	ErrInvalidInput  = errors.New("invalid input")
)
