package ir

import "errors"

// Failure classes shared by every decode and encode path. Callers wrap these
// with context and test for them with errors.Is.
var (
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	ErrHeaderMismatch     = errors.New("header mismatch")
	ErrTruncatedData      = errors.New("truncated data")
	ErrIO                 = errors.New("i/o failure")
	ErrDelegateCodec      = errors.New("image codec failure")
)
