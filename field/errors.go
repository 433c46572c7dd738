package field

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHex is matched by every ParseHexError.
	ErrInvalidHex = errors.New("invalid hex literal")
	// ErrInvalidDecimal is matched by every ParseDecimalError.
	ErrInvalidDecimal = errors.New("invalid integer literal")

	ErrMissingPrefix = errors.New("missing 0x prefix")
	ErrInvalidDigit  = errors.New("invalid digit found in string")
	ErrPosOverflow   = errors.New("number too large to fit in target type")
	ErrNegOverflow   = errors.New("number too small to fit in target type")
)

// ParseHexError reports a "0x"-prefixed literal that is not valid hex.
type ParseHexError struct {
	Text string
	Err  error
}

func (e *ParseHexError) Error() string {
	return fmt.Sprintf("could not parse hex value %q: %v", e.Text, e.Err)
}

func (e *ParseHexError) Unwrap() []error {
	return []error{ErrInvalidHex, e.Err}
}

// ParseDecimalError reports a literal that is not a valid signed 128-bit integer.
type ParseDecimalError struct {
	Text string
	Err  error
}

func (e *ParseDecimalError) Error() string {
	return fmt.Sprintf("could not parse value %q: %v", e.Text, e.Err)
}

func (e *ParseDecimalError) Unwrap() []error {
	return []error{ErrInvalidDecimal, e.Err}
}
