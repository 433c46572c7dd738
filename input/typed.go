package input

import (
	"slices"

	"abi-input/field"
	"abi-input/internal/common"
)

// Form discriminates Typed variants.
type Form int

const (
	_ Form = iota

	FormField
	FormSequence
	FormText
	FormStruct
)

func (f Form) String() string {
	switch f {
	case FormField:
		return "field"
	case FormSequence:
		return "sequence"
	case FormText:
		return "text"
	case FormStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}

// Typed is a value in the evaluator's representation.
type Typed struct {
	form Form

	elem    field.Element
	seq     []field.Element
	text    string
	members []Member
}

// Member is a named struct member. Struct members keep schema order.
type Member struct {
	Name  string
	Value Typed
}

func FieldOf(e field.Element) Typed {
	return Typed{form: FormField, elem: e}
}

func SequenceOf(elems ...field.Element) Typed {
	return Typed{form: FormSequence, seq: slices.Clone(common.OrEmpty(elems))}
}

func TextOf(s string) Typed {
	return Typed{form: FormText, text: s}
}

func StructOf(members ...Member) Typed {
	return Typed{form: FormStruct, members: slices.Clone(common.OrEmpty(members))}
}

func (t Typed) Form() Form {
	return t.form
}

func (t Typed) Field() (field.Element, bool) {
	return t.elem, t.form == FormField
}

func (t Typed) Sequence() ([]field.Element, bool) {
	return slices.Clone(t.seq), t.form == FormSequence
}

func (t Typed) Text() (string, bool) {
	return t.text, t.form == FormText
}

func (t Typed) Members() ([]Member, bool) {
	return slices.Clone(t.members), t.form == FormStruct
}

// Get returns the value of a struct member.
func (t Typed) Get(name string) (Typed, bool) {
	for _, m := range t.members {
		if m.Name == name {
			return m.Value, true
		}
	}

	return Typed{}, false
}

// Equal reports whether both values have the same form and contents,
// including struct member order.
func (t Typed) Equal(other Typed) bool {
	if t.form != other.form {
		return false
	}

	switch t.form {
	case FormField:
		return t.elem.Equal(other.elem)
	case FormSequence:
		return slices.EqualFunc(t.seq, other.seq, field.Element.Equal)
	case FormText:
		return t.text == other.text
	case FormStruct:
		return slices.EqualFunc(t.members, other.members, func(a, b Member) bool {
			return a.Name == b.Name && a.Value.Equal(b.Value)
		})
	default:
		return true
	}
}

// FromTyped converts a typed value back to its untyped form. Field elements
// become canonical hex text.
func FromTyped(t Typed) Value {
	switch t.form {
	case FormField:
		return Text(field.Encode(t.elem))
	case FormSequence:
		texts := make([]string, len(t.seq))
		for i, e := range t.seq {
			texts[i] = field.Encode(e)
		}

		return Texts(texts...)
	case FormText:
		return Text(t.text)
	case FormStruct:
		rec := make(map[string]Value, len(t.members))
		for _, m := range t.members {
			rec[m.Name] = FromTyped(m.Value)
		}

		return Record(rec)
	default:
		return Value{}
	}
}
