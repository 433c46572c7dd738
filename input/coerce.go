package input

import (
	"errors"

	"abi-input/abi"
	"abi-input/field"
	"abi-input/internal/common"
)

// DefaultMaxDepth bounds record nesting when Options.MaxDepth is unset.
const DefaultMaxDepth = 128

// Options tune a coercion.
type Options struct {
	// MaxDepth is the deepest record nesting accepted. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return o.MaxDepth
}

// Coerce converts value into a typed value under typ. path labels the value
// in errors and is extended with ".name" for every struct member visited.
func Coerce(value Value, typ *abi.Type, path string) (Typed, error) {
	return CoerceWithOptions(value, typ, path, Options{})
}

// CoerceWithOptions is Coerce with explicit options.
func CoerceWithOptions(value Value, typ *abi.Type, path string, opts Options) (Typed, error) {
	c := coercer{maxDepth: opts.maxDepth()}
	return c.coerce(value, typ, path, 0)
}

type coercer struct {
	maxDepth int
}

func (c *coercer) coerce(value Value, typ *abi.Type, path string, depth int) (Typed, error) {
	if depth > c.maxDepth {
		return Typed{}, &Error{Kind: DepthExceeded, Path: path, Expected: typ}
	}

	switch value.shape {
	case ShapeText:
		return coerceText(value.text, typ, path)

	case ShapeInteger:
		return FieldOf(field.FromUint64(value.integer)), nil

	case ShapeFlag:
		return FieldOf(field.FromBool(value.flag)), nil

	case ShapeIntegers:
		elems := make([]field.Element, len(value.integers))
		for i, v := range value.integers {
			elems[i] = field.FromUint64(v)
		}

		return SequenceOf(elems...), nil

	case ShapeTexts:
		elems := make([]field.Element, len(value.texts))

		for i, s := range value.texts {
			e, err := parseNumeric(s, path)
			if err != nil {
				return Typed{}, err
			}

			elems[i] = e
		}

		return SequenceOf(elems...), nil

	case ShapeFlags:
		elems := make([]field.Element, len(value.flags))
		for i, b := range value.flags {
			elems[i] = field.FromBool(b)
		}

		return SequenceOf(elems...), nil

	case ShapeRecord:
		if typ == nil || typ.Kind != abi.KindStruct {
			return Typed{}, &Error{Kind: TypeMismatch, Path: path, Expected: typ}
		}

		return c.coerceStruct(value.record, typ, path, depth)

	default:
		return Typed{}, &Error{Kind: TypeMismatch, Path: path, Expected: typ}
	}
}

func (c *coercer) coerceStruct(record map[string]Value, typ *abi.Type, path string, depth int) (Typed, error) {
	members := make([]Member, 0, len(typ.Fields))

	for _, f := range typ.Fields {
		fieldID := common.JoinPath(path, f.Name)

		v, ok := record[f.Name]
		if !ok {
			return Typed{}, &Error{Kind: MissingArgument, Path: fieldID}
		}

		t, err := c.coerce(v, f.Type, fieldID, depth+1)
		if err != nil {
			return Typed{}, err
		}

		members = append(members, Member{Name: f.Name, Value: t})
	}

	return StructOf(members...), nil
}

func coerceText(s string, typ *abi.Type, path string) (Typed, error) {
	if typ == nil {
		return Typed{}, &Error{Kind: TypeMismatch, Path: path}
	}

	switch {
	case typ.Kind == abi.KindString:
		return TextOf(s), nil
	case typ.Kind.IsScalar():
		e, err := parseNumeric(s, path)
		if err != nil {
			return Typed{}, err
		}

		return FieldOf(e), nil
	default:
		return Typed{}, &Error{Kind: TypeMismatch, Path: path, Expected: typ}
	}
}

func parseNumeric(s, path string) (field.Element, error) {
	e, err := field.ParseNumeric(s)
	if err == nil {
		return e, nil
	}

	var hexErr *field.ParseHexError
	if errors.As(err, &hexErr) {
		return field.Element{}, &Error{Kind: ParseHexStr, Path: path, Text: s, Err: hexErr.Err}
	}

	cause := err

	var decErr *field.ParseDecimalError
	if errors.As(err, &decErr) {
		cause = decErr.Err
	}

	return field.Element{}, &Error{Kind: ParseStr, Path: path, Text: s, Err: cause}
}
