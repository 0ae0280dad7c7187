package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a value has never been stored.
var ErrNotFound = errors.New("storage: not found")

// ParseError reports a stored value that cannot be decoded.
type ParseError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("storage: cannot parse %s value %q: %v", e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed write of a key.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage: cannot write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
