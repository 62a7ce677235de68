package booking

import "fmt"

// ValidationError marks a request the caller can fix.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// ConflictError marks a slot that was taken between listing and confirmation.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "slotConflict",
		Message: msg,
	}
}

// UpstreamError marks a failure in a critical dependency (distance matrix,
// calendar). Bookings never proceed past one of these.
type UpstreamError struct {
	Code    string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func NewUpstreamError(msg string, err error) error {
	return &UpstreamError{
		Code:    "upstreamError",
		Message: msg,
		Err:     err,
	}
}
