package witness

import (
	"fmt"
	"math"

	"abi-input/field"
)

// ToForeign converts m into a fresh foreign map, inserting entries in
// ascending index order.
func ToForeign(m Map) *ForeignMap {
	out := &ForeignMap{
		entries: make([]foreignEntry, 0, len(m)),
		index:   make(map[float64]int, len(m)),
		nan:     -1,
	}

	for _, idx := range m.Indices() {
		out.Set(float64(idx), field.Encode(m[idx]))
	}

	return out
}

// FromForeign converts a foreign map back into a Map. Entries are read in the
// foreign map's own iteration order and later entries win on collision.
//
// A key that is not an integral value in the Index range, or a value that is
// not a valid hex literal, panics with a *ProtocolError.
func FromForeign(f *ForeignMap) Map {
	out := make(Map, f.Len())

	f.ForEach(func(value string, key float64) {
		idx, err := indexFromKey(key)
		if err != nil {
			panic(&ProtocolError{Key: key, Value: value, Err: err})
		}

		elem, err := field.Decode(value)
		if err != nil {
			panic(&ProtocolError{Key: key, Value: value, Err: fmt.Errorf("%w: %w", ErrInvalidValue, err)})
		}

		out[idx] = elem
	})

	return out
}

// FromForeignSafe is FromForeign for hosts that cannot abort: a boundary
// violation is returned as a *ProtocolError instead of panicking.
func FromForeignSafe(f *ForeignMap) (m Map, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		pe, ok := r.(*ProtocolError)
		if !ok {
			panic(r)
		}

		m, err = nil, pe
	}()

	return FromForeign(f), nil
}

func indexFromKey(key float64) (Index, error) {
	if math.IsNaN(key) || math.IsInf(key, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidKey, key)
	}

	if key != math.Trunc(key) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidKey, key)
	}

	if key < 0 || key > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %v is out of range", ErrInvalidKey, key)
	}

	return Index(key), nil
}
