package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"abi-input/witness"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		abi      *Abi
		errors   []string
		warnings []string
		infos    []string
	}{
		{
			name:   "nil",
			abi:    nil,
			errors: []string{"abi_is_nil"},
		},
		{
			name: "valid",
			abi: &Abi{
				Parameters:     []Parameter{{Name: "x", Type: Field()}},
				ParamWitnesses: map[string][]witness.Index{"x": {1}},
			},
			infos: []string{"no_return_type"},
		},
		{
			name: "public parameter",
			abi: &Abi{
				Parameters:      []Parameter{{Name: "x", Type: Field(), Visibility: Public}, {Name: "y", Type: Field(), Visibility: Private}},
				ParamWitnesses:  map[string][]witness.Index{"x": {1}, "y": {2}},
				ReturnType:      Field(),
				ReturnWitnesses: []witness.Index{3},
			},
			infos: []string{"public_parameter"},
		},
		{
			name: "duplicate parameter",
			abi: &Abi{
				Parameters:     []Parameter{{Name: "x", Type: Field()}, {Name: "x", Type: Field()}},
				ParamWitnesses: map[string][]witness.Index{"x": {1}},
			},
			errors:   []string{"duplicate_parameter"},
			warnings: []string{"shared_witness"},
			infos:    []string{"no_return_type"},
		},
		{
			name: "missing witnesses",
			abi: &Abi{
				Parameters:     []Parameter{{Name: "x", Type: Field()}},
				ParamWitnesses: map[string][]witness.Index{"y": {1}},
			},
			errors: []string{"missing_param_witnesses", "unknown_param_witnesses"},
			infos:  []string{"no_return_type"},
		},
		{
			name: "count mismatch",
			abi: &Abi{
				Parameters:     []Parameter{{Name: "xs", Type: Array(3, Field())}},
				ParamWitnesses: map[string][]witness.Index{"xs": {1, 2}},
			},
			errors: []string{"witness_count_mismatch"},
			infos:  []string{"no_return_type"},
		},
		{
			name: "bad struct",
			abi: &Abi{
				Parameters: []Parameter{{
					Name: "s",
					Type: Struct(Member("a", Field()), Member("a", Field()), Member("b", nil), Member("c", &Type{})),
				}},
				ParamWitnesses: map[string][]witness.Index{"s": {1, 2}},
			},
			errors: []string{"duplicate_field", "missing_type", "unknown_kind"},
			infos:  []string{"no_return_type"},
		},
		{
			name: "warnings",
			abi: &Abi{
				Parameters: []Parameter{
					{Name: "xs", Type: Array(0, Field())},
					{Name: "i", Type: Integer(Unsigned, 0)},
				},
				ParamWitnesses:  map[string][]witness.Index{"xs": {}, "i": {4}},
				ReturnWitnesses: []witness.Index{4},
			},
			warnings: []string{"empty_array", "zero_width_integer", "unused_return_witnesses", "shared_witness"},
		},
		{
			name: "return count",
			abi: &Abi{
				ReturnType:      Array(2, Field()),
				ReturnWitnesses: []witness.Index{9},
			},
			errors: []string{"return_witness_count_mismatch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.abi)

			var errs, warns, infos []string
			for _, d := range res.Errors {
				errs = append(errs, d.Code)
			}

			for _, d := range res.Warnings {
				warns = append(warns, d.Code)
			}

			for _, d := range res.Infos {
				infos = append(infos, d.Code)
			}

			assert.Equal(t, tt.errors, errs)
			assert.Equal(t, tt.warnings, warns)
			assert.Equal(t, tt.infos, infos)
		})
	}
}

func TestValidate_MergesParametersInOrder(t *testing.T) {
	res := Validate(&Abi{
		Parameters: []Parameter{
			{Name: "a", Type: Array(0, Field()), Visibility: Public},
			{Name: "b", Type: nil},
			{Name: "c", Type: String(0), Visibility: Public},
		},
		ParamWitnesses:  map[string][]witness.Index{"a": {}, "c": {}},
		ReturnType:      Field(),
		ReturnWitnesses: []witness.Index{1},
	})

	assert.Equal(t, []string{"missing_type", "empty_array", "empty_string", "public_parameter", "public_parameter"}, res.Codes())

	var params []string
	for _, d := range res.Infos {
		params = append(params, d.Parameter)
	}

	assert.Equal(t, []string{"a", "c"}, params)
}
