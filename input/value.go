package input

import (
	"maps"
	"slices"

	"abi-input/internal/common"
)

// Shape discriminates Value variants.
type Shape int

const (
	_ Shape = iota // zero value is an invalid shape

	ShapeText
	ShapeInteger
	ShapeFlag
	ShapeIntegers
	ShapeTexts
	ShapeFlags
	ShapeRecord
)

func (s Shape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeInteger:
		return "integer"
	case ShapeFlag:
		return "flag"
	case ShapeIntegers:
		return "integer array"
	case ShapeTexts:
		return "text array"
	case ShapeFlags:
		return "flag array"
	case ShapeRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Value is an untyped input value. Only the member matching shape is set.
type Value struct {
	shape Shape

	text    string
	integer uint64
	flag    bool

	integers []uint64
	texts    []string
	flags    []bool

	record map[string]Value
}

func Text(s string) Value {
	return Value{shape: ShapeText, text: s}
}

func Integer(v uint64) Value {
	return Value{shape: ShapeInteger, integer: v}
}

func Flag(b bool) Value {
	return Value{shape: ShapeFlag, flag: b}
}

func Integers(vs ...uint64) Value {
	return Value{shape: ShapeIntegers, integers: slices.Clone(common.OrEmpty(vs))}
}

func Texts(vs ...string) Value {
	return Value{shape: ShapeTexts, texts: slices.Clone(common.OrEmpty(vs))}
}

func Flags(vs ...bool) Value {
	return Value{shape: ShapeFlags, flags: slices.Clone(common.OrEmpty(vs))}
}

// Record builds a record value. The map is copied.
func Record(fields map[string]Value) Value {
	rec := make(map[string]Value, len(fields))
	maps.Copy(rec, fields)

	return Value{shape: ShapeRecord, record: rec}
}

func (v Value) Shape() Shape {
	return v.shape
}

func (v Value) AsText() (string, bool) {
	return v.text, v.shape == ShapeText
}

func (v Value) AsInteger() (uint64, bool) {
	return v.integer, v.shape == ShapeInteger
}

func (v Value) AsFlag() (bool, bool) {
	return v.flag, v.shape == ShapeFlag
}

func (v Value) AsIntegers() ([]uint64, bool) {
	return slices.Clone(v.integers), v.shape == ShapeIntegers
}

func (v Value) AsTexts() ([]string, bool) {
	return slices.Clone(v.texts), v.shape == ShapeTexts
}

func (v Value) AsFlags() ([]bool, bool) {
	return slices.Clone(v.flags), v.shape == ShapeFlags
}

// Get returns a record member.
func (v Value) Get(name string) (Value, bool) {
	if v.shape != ShapeRecord {
		return Value{}, false
	}

	m, ok := v.record[name]

	return m, ok
}
