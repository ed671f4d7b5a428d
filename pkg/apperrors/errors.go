package apperrors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrOracleUnavailable = errors.New("reasoning service unavailable")
	ErrMalformedInput    = errors.New("malformed input")
)
