package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMalformedInput      = errors.New("malformed input")
	ErrProviderUnavailable = errors.New("data provider unavailable")
)
