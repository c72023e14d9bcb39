package auth

import "errors"

var (
	ErrExchangeFailed = errors.New("failed to exchange code for token")
	ErrNoIDToken      = errors.New("no ID token in token response")
)
