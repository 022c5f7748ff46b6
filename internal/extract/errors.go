package extract

import (
	"errors"
	"fmt"
)

// ErrMissingPrice is returned when the page has no usable regular price.
var ErrMissingPrice = errors.New("regular price not found")

// ValidationError rejects a page whose essential field could not be extracted.
type ValidationError struct {
	URL   string
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate %s: %s: %v", e.URL, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Warning is a data-quality anomaly that did not stop extraction.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}
