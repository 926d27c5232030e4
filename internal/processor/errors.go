package processor

import "errors"

var (
	// ErrEmptyInput is returned when the text holds no sentence and the
	// summarizer is configured to require one.
	ErrEmptyInput = errors.New("input contains no sentences")

	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)
