package input

import (
	"errors"
	"fmt"

	"abi-input/abi"
	"abi-input/internal/common"
)

// ErrorKind classifies coercion failures.
type ErrorKind int

const (
	_ ErrorKind = iota

	TypeMismatch
	MissingArgument
	ParseHexStr
	ParseStr
	DepthExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "type_mismatch"
	case MissingArgument:
		return "missing_argument"
	case ParseHexStr:
		return "parse_hex_str"
	case ParseStr:
		return "parse_str"
	case DepthExceeded:
		return "depth_exceeded"
	default:
		return common.UnknownStr
	}
}

// Sentinels matched by errors.Is against an *Error of the corresponding kind.
var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrMissingArgument = errors.New("missing argument")
	ErrParseHexStr     = errors.New("invalid hex string")
	ErrParseStr        = errors.New("invalid integer string")
	ErrDepthExceeded   = errors.New("nesting too deep")

	// ErrUnsupportedValue is returned when a document value matches none of
	// the untyped shapes.
	ErrUnsupportedValue = errors.New("value does not match any supported input shape")
)

// Error is a coercion failure at a single path.
type Error struct {
	Kind ErrorKind
	// Path is the dotted location of the offending value.
	Path string
	// Text is the literal that failed to parse, for the parse kinds.
	Text string
	// Expected is the schema node the value was checked against, for TypeMismatch.
	Expected *abi.Type
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var msg string

	switch e.Kind {
	case TypeMismatch:
		msg = fmt.Sprintf("cannot parse value into %s", e.Expected)
	case MissingArgument:
		return fmt.Sprintf("argument %q is missing", e.Path)
	case ParseHexStr:
		msg = fmt.Sprintf("could not parse hex value %q", e.Text)
	case ParseStr:
		msg = fmt.Sprintf("could not parse value %q", e.Text)
	case DepthExceeded:
		msg = "value is nested too deeply"
	default:
		msg = "invalid input"
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	if e.Path == "" {
		return msg
	}

	return e.Path + ": " + msg
}

func (e *Error) Unwrap() []error {
	var errs []error
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case TypeMismatch:
		return ErrTypeMismatch
	case MissingArgument:
		return ErrMissingArgument
	case ParseHexStr:
		return ErrParseHexStr
	case ParseStr:
		return ErrParseStr
	case DepthExceeded:
		return ErrDepthExceeded
	default:
		return nil
	}
}
