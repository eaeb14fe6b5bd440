package errs

import "errors"

// Domain-specific sentinel errors shared across the engine's packages
var (
	// Storage errors
	ErrKeyNotFound    = errors.New("key not found")
	ErrStorageFailure = errors.New("storage operation failed")

	// Wizard errors
	ErrStepLocked        = errors.New("step precondition not met")
	ErrNoPreviousStep    = errors.New("no previous step")
	ErrNoNextStep        = errors.New("no next step")
	ErrOperationInFlight = errors.New("operation already in flight")
	ErrWrongStep         = errors.New("operation not valid for current step")

	// Admin gate errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAdmin         = errors.New("admin role required")

	// Places errors
	ErrPlacesUnconfigured = errors.New("places provider not configured")
)
