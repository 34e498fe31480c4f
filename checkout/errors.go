package checkout

import "errors"

var (
	// ErrInvalidQuantity is returned when an order asks for fewer than one item
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrMissingField is returned when a required buyer field is blank
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidShipping is returned for an unknown shipping method
	ErrInvalidShipping = errors.New("invalid shipping method")
)
