package witness

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKey   = errors.New("invalid witness key")
	ErrInvalidValue = errors.New("invalid witness value")
)

// ProtocolError reports a foreign map entry that violates the boundary
// contract. It is raised as a panic by FromForeign.
type ProtocolError struct {
	Key   float64
	Value string
	Err   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("witness boundary violation at key %v: %v", e.Key, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
