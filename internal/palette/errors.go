package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPalette is reported when a conversion is requested with no
	// palette entries.
	ErrEmptyPalette = errors.New("palette is empty")
	// ErrBadColor is reported for palette colors that cannot be parsed.
	ErrBadColor = errors.New("invalid color")
)

// ValidationError describes caller input that was rejected before any pixel
// work started.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// EmptyPalette returns the error reported when a conversion is requested
// with no palette colors.
func EmptyPalette() error {
	return &ValidationError{Field: "palette", Reason: "at least one color is required", Err: ErrEmptyPalette}
}
