package oauthmodel

// FlowError is the opaque error kind handed to the app on the callback redirect.
// The user never sees raw error text.
type FlowError string

const (
	// ErrAccessDenied is passed through from Google when consent is refused.
	ErrAccessDenied FlowError = "access_denied"
	// ErrNoCode means the callback carried neither a code nor an error.
	ErrNoCode FlowError = "no_code"
	// ErrInvalidDomain means the account is not part of the allowed workspace.
	ErrInvalidDomain FlowError = "invalid_domain"
	// ErrAuthFailed covers every failed exchange or verification step.
	ErrAuthFailed FlowError = "auth_failed"
)
