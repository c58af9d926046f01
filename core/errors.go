package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoPlayer     = errors.New("level has no player")
	ErrInvalidState = errors.New("invalid state")
	ErrMissingField = errors.New("missing field")
)

// LoadError describes an instance of a level description that could not
// be turned into a simulation object.
type LoadError struct {
	Level string
	Index int
	Type  string
	Field string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("core: level %q instance %d (%s): %s: %v", e.Level, e.Index, e.Type, e.Field, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
