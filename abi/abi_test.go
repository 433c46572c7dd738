package abi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abi-input/witness"
)

const programJSON = `{
  "parameters": [
    {"name": "foo", "type": {"kind": "field"}, "visibility": "private"},
    {
      "name": "bar",
      "type": {"kind": "array", "length": 2, "type": {"kind": "field"}},
      "visibility": "private"
    }
  ],
  "param_witnesses": {"foo": [1], "bar": [2, 3]},
  "return_type": null,
  "return_witnesses": []
}`

func TestParse(t *testing.T) {
	a, err := Parse([]byte(programJSON))
	require.NoError(t, err)

	require.Len(t, a.Parameters, 2)
	assert.Equal(t, "foo", a.Parameters[0].Name)
	assert.Equal(t, KindField, a.Parameters[0].Type.Kind)
	assert.Equal(t, Private, a.Parameters[0].Visibility)

	bar := a.Parameters[1].Type
	assert.Equal(t, KindArray, bar.Kind)
	assert.Equal(t, uint32(2), bar.Length)
	require.NotNil(t, bar.Elem)
	assert.Equal(t, KindField, bar.Elem.Kind)

	assert.Equal(t, []witness.Index{1}, a.ParamWitnesses["foo"])
	assert.Equal(t, []witness.Index{2, 3}, a.ParamWitnesses["bar"])
	assert.Nil(t, a.ReturnType)
	assert.Empty(t, a.ReturnWitnesses)
	assert.Equal(t, 3, a.FieldCount())

	assert.False(t, Validate(a).HasErrors())
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *Type
	}{
		{name: "field", src: `{kind: field}`, want: Field()},
		{name: "boolean", src: `{kind: boolean}`, want: Boolean()},
		{name: "unsigned", src: `{kind: integer, sign: unsigned, width: 32}`, want: Integer(Unsigned, 32)},
		{name: "signed", src: `{kind: integer, sign: signed, width: 8}`, want: Integer(Signed, 8)},
		{name: "string", src: `{kind: string, length: 5}`, want: String(5)},
		{
			name: "nested array",
			src:  `{kind: array, length: 2, type: {kind: array, length: 3, type: {kind: boolean}}}`,
			want: Array(2, Array(3, Boolean())),
		},
		{
			name: "struct as list",
			src:  `{kind: struct, fields: [{name: b, type: {kind: field}}, {name: a, type: {kind: boolean}}]}`,
			want: Struct(Member("b", Field()), Member("a", Boolean())),
		},
		{
			name: "struct as object keeps order",
			src:  `{"kind": "struct", "fields": {"zeta": {"kind": "field"}, "alpha": {"kind": "string", "length": 2}}}`,
			want: Struct(Member("zeta", Field()), Member("alpha", String(2))),
		},
		{name: "empty struct", src: `{kind: struct}`, want: &Type{Kind: KindStruct}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse([]byte(`parameters: [{name: p, type: ` + tt.src + `}]`))
			require.NoError(t, err)
			require.Len(t, a.Parameters, 1)
			assert.Equal(t, tt.want, a.Parameters[0].Type)
		})
	}
}

func TestParseTypes_Invalid(t *testing.T) {
	for _, src := range []string{
		`{kind: tuple}`,
		`{kind: integer, sign: maybe, width: 8}`,
		`{kind: array, length: 2}`,
		`{kind: struct, fields: 3}`,
		`{kind: struct, fields: [{name: a}]}`,
		`field`,
	} {
		_, err := Parse([]byte(`parameters: [{name: p, type: ` + src + `}]`))
		assert.Error(t, err, src)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	a := &Abi{
		Parameters: []Parameter{
			{Name: "s", Type: Struct(Member("z", Integer(Signed, 16)), Member("a", Array(2, String(3)))), Visibility: Public},
		},
		ParamWitnesses:  map[string][]witness.Index{"s": {1, 2, 3, 4, 5, 6, 7}},
		ReturnType:      Boolean(),
		ReturnWitnesses: []witness.Index{8},
	}

	data, err := Marshal(a)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.json")
	require.NoError(t, os.WriteFile(path, []byte(programJSON), 0o644))

	a, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, a.ParameterNames())

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestTypeString(t *testing.T) {
	typ := Struct(
		Member("a", Integer(Unsigned, 8)),
		Member("b", Array(2, Integer(Signed, 64))),
		Member("c", String(4)),
		Member("d", Boolean()),
	)
	assert.Equal(t, "struct { a: u8, b: [i64; 2], c: str<4>, d: bool }", typ.String())
	assert.Equal(t, 1+2+4+1, typ.FieldCount())
	assert.Equal(t, "Kind(9)", Kind(9).String())

	k, ok := ParseKind("array")
	assert.True(t, ok)
	assert.Equal(t, KindArray, k)

	_, ok = ParseKind("tuple")
	assert.False(t, ok)
}

func TestKindIsScalar(t *testing.T) {
	for _, k := range []Kind{KindField, KindInteger, KindBoolean} {
		assert.True(t, k.IsScalar(), k.String())
	}

	for _, k := range []Kind{KindString, KindArray, KindStruct, Kind(0)} {
		assert.False(t, k.IsScalar(), k.String())
	}
}
