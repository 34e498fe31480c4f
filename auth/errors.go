package auth

import "errors"

var (
	// ErrUnauthenticated is returned when no valid session backs a request
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the session role may not use a resource
	ErrForbidden = errors.New("forbidden")
)
