package parse

import "errors"

// Domain-specific errors for the parse package.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrInputTooLong = errors.New("input text exceeds the maximum length")
	ErrEmptyTitle   = errors.New("title is empty after removing metadata")
)
