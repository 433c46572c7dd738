package layout

import "errors"

var (
	ErrMissingParameter    = errors.New("missing parameter")
	ErrUnexpectedParameter = errors.New("unexpected parameter")
	ErrUnexpectedReturn    = errors.New("return value given but abi has no return type")
	ErrShapeMismatch       = errors.New("value does not match parameter type")
	ErrWitnessCount        = errors.New("witness count does not match value size")
	ErrReturnConflict      = errors.New("return value conflicts with parameter witness")
	ErrMissingWitness      = errors.New("missing witness")
	ErrInvalidString       = errors.New("witness value is not a byte")
)
