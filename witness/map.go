package witness

import (
	"maps"
	"slices"

	"abi-input/field"
)

// Index identifies a witness.
type Index uint32

// Map assigns field elements to witness indices.
type Map map[Index]field.Element

// Indices returns the indices in ascending order.
func (m Map) Indices() []Index {
	return slices.Sorted(maps.Keys(m))
}

// Equal reports whether both maps hold the same indices with equal values.
func (m Map) Equal(other Map) bool {
	return maps.EqualFunc(m, other, field.Element.Equal)
}
