package emoji

import (
	"errors"
	"fmt"
)

// Sentinel errors for the emoji package.
var (
	// ErrUnknownFormat is returned when a manifest extension is neither
	// TOML nor YAML.
	ErrUnknownFormat = errors.New("emoji: unknown manifest format")

	// ErrEmptyID is returned when a manifest entry has no id.
	ErrEmptyID = errors.New("emoji: manifest entry without id")
)

// FrameError is returned when a frame image cannot be read or decoded.
type FrameError struct {
	ID   string
	Path string
	Err  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("emoji: frame %q of %q: %v", e.Path, e.ID, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
