package services

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP
// status codes; anything else coming out of a service is a store error and
// must not reach the client verbatim.
var (
	// ErrValidation indicates bad or missing caller input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a duplicate email at registration.
	ErrConflict = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound covers missing rows and rows owned by someone else.
	ErrNotFound = errors.New("record not found")
	// ErrReference indicates a referenced client/project that does not
	// exist or is not owned by the caller.
	ErrReference = errors.New("referenced record not found")
	// ErrBadFormat indicates undecodable or structurally malformed CSV.
	ErrBadFormat = errors.New("malformed csv")
)
