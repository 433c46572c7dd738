// Package input converts loosely-typed external data into the typed values
// the circuit evaluator consumes.
//
// Value is the untyped side: the handful of shapes a JSON or YAML document
// can present (strings, unsigned integers, booleans, flat arrays of those,
// and nested records). Typed is the evaluator side: single field elements,
// sequences of field elements, text, and structs.
//
// Coerce walks a Value under an abi.Type schema node:
//
//	typ := abi.Struct(abi.Member("x", abi.Field()))
//	v, err := input.Coerce(input.Record(map[string]input.Value{"x": input.Text("0x10")}), typ, "arg")
//
// The first failure aborts the whole conversion and is reported as an
// *Error carrying the dotted path of the offending value (for example
// "arg.x"). Extra record keys not declared by the schema are ignored.
package input
