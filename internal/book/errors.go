package book

import "errors"

// Validation failures reject an order before any book mutation.
var (
	ErrInvalidQuantity = errors.New("book: quantity must be positive")
	ErrMissingPrice    = errors.New("book: limit order requires a positive price")
)
