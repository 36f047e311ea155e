package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailRequired = errors.New("email required")

	// Table errors
	ErrTableNotFound      = errors.New("table not found")
	ErrTableConflict      = errors.New("table conflict")
	ErrInvalidTableStatus = errors.New("invalid table status")
	ErrInvalidSeats       = errors.New("seats must be positive")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNoAvailableTable     = errors.New("no available table")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidPartySize     = errors.New("party size must be positive")
	ErrBookingCancelled     = errors.New("booking already cancelled")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
