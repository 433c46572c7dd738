package abi

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind discriminates Type variants.
type Kind int

const (
	_ Kind = iota // zero value is an invalid kind

	KindField   // field
	KindInteger // integer
	KindBoolean // boolean
	KindString  // string
	KindArray   // array
	KindStruct  // struct
)

// ParseKind maps the ABI "kind" tag to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindField; k <= KindStruct; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}

// IsScalar reports whether values of the kind occupy a single field element.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindField, KindInteger, KindBoolean:
		return true
	}
}

// Sign is the signedness of an integer type.
type Sign string

const (
	Unsigned Sign = "unsigned"
	Signed   Sign = "signed"
)

// Type is a schema node. Only the fields relevant to Kind are set.
type Type struct {
	Kind Kind

	Sign  Sign   // KindInteger
	Width uint32 // KindInteger, in bits

	Length uint32 // KindArray, KindString
	Elem   *Type  // KindArray

	Fields []StructField // KindStruct, in declared order
}

// StructField is a named member of a struct type.
type StructField struct {
	Name string `yaml:"name"`
	Type *Type  `yaml:"type"`
}

func Field() *Type {
	return &Type{Kind: KindField}
}

func Integer(sign Sign, width uint32) *Type {
	return &Type{Kind: KindInteger, Sign: sign, Width: width}
}

func Boolean() *Type {
	return &Type{Kind: KindBoolean}
}

func String(length uint32) *Type {
	return &Type{Kind: KindString, Length: length}
}

func Array(length uint32, elem *Type) *Type {
	return &Type{Kind: KindArray, Length: length, Elem: elem}
}

func Struct(fields ...StructField) *Type {
	return &Type{Kind: KindStruct, Fields: fields}
}

// Member is a shorthand for building StructField values.
func Member(name string, typ *Type) StructField {
	return StructField{Name: name, Type: typ}
}

// FieldCount returns the number of field elements a value of this type
// occupies once flattened into a witness map.
func (t *Type) FieldCount() int {
	switch t.Kind {
	case KindField, KindInteger, KindBoolean:
		return 1
	case KindString:
		return int(t.Length)
	case KindArray:
		if t.Elem == nil {
			return 0
		}

		return int(t.Length) * t.Elem.FieldCount()
	case KindStruct:
		n := 0
		for _, f := range t.Fields {
			if f.Type != nil {
				n += f.Type.FieldCount()
			}
		}

		return n
	default:
		return 0
	}
}

// String renders the type in a compact, source-like form used in diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case KindField:
		return "Field"
	case KindInteger:
		prefix := "u"
		if t.Sign == Signed {
			prefix = "i"
		}

		return fmt.Sprintf("%s%d", prefix, t.Width)
	case KindBoolean:
		return "bool"
	case KindString:
		return fmt.Sprintf("str<%d>", t.Length)
	case KindArray:
		return fmt.Sprintf("[%s; %d]", t.Elem, t.Length)
	case KindStruct:
		parts := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			parts = append(parts, f.Name+": "+f.Type.String())
		}

		return "struct { " + strings.Join(parts, ", ") + " }"
	default:
		return t.Kind.String()
	}
}
