package layout

import (
	"fmt"
	"maps"
	"slices"

	"abi-input/abi"
	"abi-input/field"
	"abi-input/input"
	"abi-input/internal/common"
	"abi-input/witness"
)

// CoerceInputs coerces each declared parameter from doc, seeding the error
// path with the parameter name. Keys in doc that name no parameter are
// ignored.
func CoerceInputs(a *abi.Abi, doc input.Document, opts input.Options) (map[string]input.Typed, error) {
	out := make(map[string]input.Typed, len(a.Parameters))

	for _, p := range a.Parameters {
		v, ok := doc[p.Name]
		if !ok {
			return nil, &input.Error{Kind: input.MissingArgument, Path: p.Name}
		}

		t, err := input.CoerceWithOptions(v, p.Type, p.Name, opts)
		if err != nil {
			return nil, err
		}

		out[p.Name] = t
	}

	return out, nil
}

// Encode writes every parameter value (and the return value, when given)
// into a fresh witness map.
func Encode(a *abi.Abi, inputs map[string]input.Typed, ret *input.Typed) (witness.Map, error) {
	for _, name := range slices.Sorted(maps.Keys(inputs)) {
		if _, ok := a.Parameter(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedParameter, name)
		}
	}

	out := make(witness.Map, a.FieldCount())

	for _, p := range a.Parameters {
		v, ok := inputs[p.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingParameter, p.Name)
		}

		elems, err := Flatten(v, p.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}

		ws := a.ParamWitnesses[p.Name]
		if len(ws) != len(elems) {
			return nil, fmt.Errorf("parameter %q: %w: %d witnesses for %d elements", p.Name, ErrWitnessCount, len(ws), len(elems))
		}

		for i, idx := range ws {
			out[idx] = elems[i]
		}
	}

	if ret == nil {
		return out, nil
	}

	if a.ReturnType == nil {
		return nil, ErrUnexpectedReturn
	}

	elems, err := Flatten(*ret, a.ReturnType)
	if err != nil {
		return nil, fmt.Errorf("return value: %w", err)
	}

	if len(a.ReturnWitnesses) != len(elems) {
		return nil, fmt.Errorf("return value: %w: %d witnesses for %d elements", ErrWitnessCount, len(a.ReturnWitnesses), len(elems))
	}

	for i, idx := range a.ReturnWitnesses {
		if prev, ok := out[idx]; ok && !prev.Equal(elems[i]) {
			return nil, fmt.Errorf("%w: witness %d", ErrReturnConflict, idx)
		}

		out[idx] = elems[i]
	}

	return out, nil
}

// Flatten lays a typed value out as field elements under typ.
func Flatten(v input.Typed, typ *abi.Type) ([]field.Element, error) {
	var out []field.Element

	err := flatten(&out, v, typ, "")
	if err != nil {
		return nil, err
	}

	return out, nil
}

func flatten(out *[]field.Element, v input.Typed, typ *abi.Type, path string) error {
	if typ == nil {
		return fmt.Errorf("%w: no type at %q", ErrShapeMismatch, path)
	}

	mismatch := func() error {
		return fmt.Errorf("%w: %s value at %q for %s", ErrShapeMismatch, v.Form(), path, typ)
	}

	switch {
	case typ.Kind.IsScalar():
		e, ok := v.Field()
		if !ok {
			return mismatch()
		}

		*out = append(*out, e)
	case typ.Kind == abi.KindString:
		s, ok := v.Text()
		if !ok || len(s) != int(typ.Length) {
			return mismatch()
		}

		for i := 0; i < len(s); i++ {
			*out = append(*out, field.FromUint64(uint64(s[i])))
		}
	case typ.Kind == abi.KindArray:
		seq, ok := v.Sequence()
		if !ok || len(seq) != typ.FieldCount() {
			return mismatch()
		}

		*out = append(*out, seq...)
	case typ.Kind == abi.KindStruct:
		if v.Form() != input.FormStruct {
			return mismatch()
		}

		for _, f := range typ.Fields {
			member, ok := v.Get(f.Name)
			if !ok {
				return fmt.Errorf("%w: struct member %q missing", ErrShapeMismatch, common.JoinPath(path, f.Name))
			}

			err := flatten(out, member, f.Type, common.JoinPath(path, f.Name))
			if err != nil {
				return err
			}
		}
	default:
		return mismatch()
	}

	return nil
}
