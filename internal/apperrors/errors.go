package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrUnsupportedCurrency indicates a conversion involving a blocked currency.
var ErrUnsupportedCurrency = errors.New("currency not supported for conversion")

// ErrRateNotFound indicates the target currency is absent from the fetched rate set.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrInvalidDateRange indicates a historical range whose start date is after its end date.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrUnknownProvider indicates a provider name with no registered implementation.
// This is a configuration error and is surfaced at startup.
var ErrUnknownProvider = errors.New("unknown rate provider")

// UpstreamError is returned when the external rate provider call fails or
// returns an unparseable payload. It carries the upstream status and body so
// callers can see what actually happened.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream provider returned status %d: %s", e.StatusCode, e.Body)
}

// IsUpstreamError reports whether err wraps an UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
