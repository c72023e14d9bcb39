package errors

import (
	"errors"
	"fmt"
)

// Common error types for the gateway
var (
	// Credential errors
	ErrMissingCredential = errors.New("no token provided")
	ErrMalformedToken    = errors.New("invalid token format")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrTokenExpired      = errors.New("token expired")
	ErrDomainMismatch    = errors.New("invalid domain")
	ErrInvalidAudience   = errors.New("invalid audience")

	// Configuration errors
	ErrMisconfiguredSigningKey  = errors.New("session signing secret is not configured")
	ErrMisconfiguredUpstreamKey = errors.New("upstream API key is not configured")

	// Request errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrBadRequest       = errors.New("missing model or payload")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join combines errors so that each one matches with Is
func Join(errs ...error) error {
	return errors.Join(errs...)
}
