package layout

import (
	"fmt"

	"abi-input/abi"
	"abi-input/field"
	"abi-input/input"
	"abi-input/witness"
)

// Decode reads every parameter back out of m. The return value is decoded
// only when the ABI declares a return type and all of its witnesses are
// present in m; otherwise it is nil.
func Decode(a *abi.Abi, m witness.Map) (map[string]input.Typed, *input.Typed, error) {
	inputs := make(map[string]input.Typed, len(a.Parameters))

	for _, p := range a.Parameters {
		elems, err := collect(m, a.ParamWitnesses[p.Name])
		if err != nil {
			return nil, nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}

		v, err := Unflatten(elems, p.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}

		inputs[p.Name] = v
	}

	if a.ReturnType == nil || len(a.ReturnWitnesses) == 0 {
		return inputs, nil, nil
	}

	elems, err := collect(m, a.ReturnWitnesses)
	if err != nil {
		return inputs, nil, nil
	}

	ret, err := Unflatten(elems, a.ReturnType)
	if err != nil {
		return nil, nil, fmt.Errorf("return value: %w", err)
	}

	return inputs, &ret, nil
}

func collect(m witness.Map, indices []witness.Index) ([]field.Element, error) {
	elems := make([]field.Element, 0, len(indices))

	for _, idx := range indices {
		e, ok := m[idx]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMissingWitness, idx)
		}

		elems = append(elems, e)
	}

	return elems, nil
}

// Unflatten rebuilds a typed value of type typ from exactly
// typ.FieldCount() elements.
func Unflatten(elems []field.Element, typ *abi.Type) (input.Typed, error) {
	if typ == nil {
		return input.Typed{}, fmt.Errorf("%w: missing type", ErrShapeMismatch)
	}

	if len(elems) != typ.FieldCount() {
		return input.Typed{}, fmt.Errorf("%w: %d elements for %s", ErrWitnessCount, len(elems), typ)
	}

	v, _, err := unflatten(elems, typ)

	return v, err
}

func unflatten(elems []field.Element, typ *abi.Type) (input.Typed, []field.Element, error) {
	if typ == nil {
		return input.Typed{}, nil, fmt.Errorf("%w: missing type", ErrShapeMismatch)
	}

	switch {
	case typ.Kind.IsScalar():
		return input.FieldOf(elems[0]), elems[1:], nil
	case typ.Kind == abi.KindString:
		n := int(typ.Length)
		buf := make([]byte, n)

		for i, e := range elems[:n] {
			b, ok := e.Uint64()
			if !ok || b > 0xff {
				return input.Typed{}, nil, fmt.Errorf("%w: %s", ErrInvalidString, e)
			}

			buf[i] = byte(b)
		}

		return input.TextOf(string(buf)), elems[n:], nil
	case typ.Kind == abi.KindArray:
		n := typ.FieldCount()
		return input.SequenceOf(elems[:n]...), elems[n:], nil
	case typ.Kind == abi.KindStruct:
		members := make([]input.Member, 0, len(typ.Fields))

		for _, f := range typ.Fields {
			var (
				v   input.Typed
				err error
			)

			v, elems, err = unflatten(elems, f.Type)
			if err != nil {
				return input.Typed{}, nil, err
			}

			members = append(members, input.Member{Name: f.Name, Value: v})
		}

		return input.StructOf(members...), elems, nil
	default:
		return input.Typed{}, nil, fmt.Errorf("%w: cannot decode %s", ErrShapeMismatch, typ)
	}
}
