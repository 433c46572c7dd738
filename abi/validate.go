package abi

import (
	"fmt"
	"maps"
	"slices"

	"abi-input/internal/common"
	"abi-input/internal/diagnostic"
	"abi-input/witness"
)

// Validate checks the ABI for structural problems: malformed types, duplicate
// names, and witness lists that do not match the parameter types. Public
// parameters and a missing return type are reported as infos.
func Validate(a *Abi) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if a == nil {
		res.AddError("abi_is_nil", "abi is nil", "", "")
		return res
	}

	for _, name := range common.Duplicates(a.ParameterNames()) {
		res.AddError("duplicate_parameter", fmt.Sprintf("parameter %q declared more than once", name), name, "")
	}

	for _, p := range a.Parameters {
		res.Merge(validateParameter(a, p))
	}

	for _, name := range slices.Sorted(maps.Keys(a.ParamWitnesses)) {
		if _, ok := a.Parameter(name); !ok {
			res.AddError("unknown_param_witnesses", fmt.Sprintf("witnesses listed for undeclared parameter %q", name), name, "")
		}
	}

	if a.ReturnType != nil {
		validateType(res, "", "return", a.ReturnType)

		if want := a.ReturnType.FieldCount(); len(a.ReturnWitnesses) != want {
			res.AddError("return_witness_count_mismatch",
				fmt.Sprintf("return type %s takes %d witnesses, %d listed", a.ReturnType, want, len(a.ReturnWitnesses)), "", "return")
		}
	} else if len(a.ReturnWitnesses) > 0 {
		res.AddWarning("unused_return_witnesses", "return witnesses listed without a return type", "", "return")
	} else {
		res.AddInfo("no_return_type", "program declares no return value", "", "return")
	}

	validateWitnessOverlap(res, a)

	return res
}

func validateParameter(a *Abi, p Parameter) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if p.Name == "" {
		res.AddError("empty_parameter_name", "parameter has no name", "", "")
		return res
	}

	if p.Visibility == Public {
		res.AddInfo("public_parameter", "value is disclosed to the verifier", p.Name, "")
	}

	if p.Type == nil {
		res.AddError("missing_type", "parameter has no type", p.Name, p.Name)
		return res
	}

	validateType(&res, p.Name, p.Name, p.Type)

	ws, ok := a.ParamWitnesses[p.Name]
	if !ok {
		res.AddError("missing_param_witnesses", "no witnesses listed for parameter", p.Name, "")
		return res
	}

	if want := p.Type.FieldCount(); len(ws) != want {
		res.AddError("witness_count_mismatch",
			fmt.Sprintf("type %s takes %d witnesses, %d listed", p.Type, want, len(ws)), p.Name, "")
	}

	return res
}

func validateType(res *diagnostic.Diagnostics, param, path string, t *Type) {
	switch t.Kind {
	case KindField, KindBoolean:
	case KindInteger:
		if t.Width == 0 {
			res.AddWarning("zero_width_integer", "integer type has width 0", param, path)
		}
	case KindString:
		if t.Length == 0 {
			res.AddWarning("empty_string", "string type has length 0", param, path)
		}
	case KindArray:
		if t.Elem == nil {
			res.AddError("missing_element_type", "array type has no element type", param, path)
			return
		}

		if t.Length == 0 {
			res.AddWarning("empty_array", "array type has length 0", param, path)
		}

		validateType(res, param, path+"[]", t.Elem)
	case KindStruct:
		names := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			names = append(names, f.Name)
		}

		for _, name := range common.Duplicates(names) {
			res.AddError("duplicate_field", fmt.Sprintf("struct field %q declared more than once", name), param, common.JoinPath(path, name))
		}

		for _, f := range t.Fields {
			fieldPath := common.JoinPath(path, f.Name)

			if f.Name == "" {
				res.AddError("empty_field_name", "struct field has no name", param, path)
				continue
			}

			if f.Type == nil {
				res.AddError("missing_type", "struct field has no type", param, fieldPath)
				continue
			}

			validateType(res, param, fieldPath, f.Type)
		}
	default:
		res.AddError("unknown_kind", fmt.Sprintf("unknown type kind %s", t.Kind), param, path)
	}
}

// validateWitnessOverlap warns about witness indices claimed more than once.
func validateWitnessOverlap(res *diagnostic.Diagnostics, a *Abi) {
	var all []witness.Index

	for _, p := range a.Parameters {
		all = append(all, a.ParamWitnesses[p.Name]...)
	}

	all = append(all, a.ReturnWitnesses...)

	for _, idx := range common.Duplicates(all) {
		res.AddWarning("shared_witness", fmt.Sprintf("witness %d is assigned more than once", idx), "", "")
	}
}
