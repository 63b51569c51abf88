package article

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no article file exists for a slug.
var ErrNotFound = errors.New("article not found")

// ReadError reports an I/O failure other than a missing file.
type ReadError struct {
	Slug string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read article %q: %v", e.Slug, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
