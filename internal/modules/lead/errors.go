package lead

import "errors"

// Rejection reasons for lead submissions. The messages are part of the
// public API contract and are returned verbatim to clients.
var (
	ErrSpam            = errors.New("Spam detected")
	ErrInvalidName     = errors.New("Invalid name")
	ErrInvalidPhone    = errors.New("Invalid phone")
	ErrInvalidEmail    = errors.New("Invalid email")
	ErrConsentRequired = errors.New("Consent is required")
)

// IsValidationError reports whether err is a client-input rejection
// (400 with the reason) as opposed to a store failure (500).
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrSpam),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrConsentRequired):
		return true
	}
	return false
}
