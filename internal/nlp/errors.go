package nlp

import "fmt"

// InitError reports a language resource that could not be loaded.
// Summarization cannot proceed without it.
type InitError struct {
	Resource string
	Err      error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Resource, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
