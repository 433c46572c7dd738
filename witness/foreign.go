package witness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ForeignMap is the host-facing witness map: float64 keys to encoded strings,
// iterated in insertion order. Overwriting a key keeps its original position.
// Keys compare like the host runtime's Map: every NaN is the same key and
// -0 equals +0.
type ForeignMap struct {
	entries []foreignEntry
	index   map[float64]int
	nan     int
}

type foreignEntry struct {
	key   float64
	value string
}

// NewForeignMap creates a new empty foreign map.
func NewForeignMap() *ForeignMap {
	return &ForeignMap{index: make(map[float64]int), nan: -1}
}

func (f *ForeignMap) find(key float64) (int, bool) {
	if math.IsNaN(key) {
		if f.index == nil || f.nan < 0 {
			return 0, false
		}

		return f.nan, true
	}

	i, ok := f.index[key]

	return i, ok
}

func (f *ForeignMap) Set(key float64, value string) {
	if i, ok := f.find(key); ok {
		f.entries[i].value = value
		return
	}

	if f.index == nil {
		f.index = make(map[float64]int)
		f.nan = -1
	}

	if math.IsNaN(key) {
		f.nan = len(f.entries)
	} else {
		f.index[key] = len(f.entries)
	}

	f.entries = append(f.entries, foreignEntry{key: key, value: value})
}

func (f *ForeignMap) Get(key float64) (string, bool) {
	i, ok := f.find(key)
	if !ok {
		return "", false
	}

	return f.entries[i].value, true
}

func (f *ForeignMap) Len() int {
	return len(f.entries)
}

// ForEach calls fn for every entry in insertion order. The argument order
// follows the host runtime's Map.forEach callback.
func (f *ForeignMap) ForEach(fn func(value string, key float64)) {
	for _, e := range f.entries {
		fn(e.value, e.key)
	}
}

// MarshalJSON writes the map as a JSON object in insertion order.
func (f *ForeignMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range f.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(strconv.FormatFloat(e.key, 'f', -1, 64))
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object whose keys are numbers and whose values
// are strings, preserving document order.
func (f *ForeignMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("foreign map: expected object, got %v", tok)
	}

	out := NewForeignMap()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		rawKey, _ := tok.(string)

		key, err := strconv.ParseFloat(rawKey, 64)
		if err != nil {
			return fmt.Errorf("foreign map: key %q is not a number: %w", rawKey, err)
		}

		var value string

		err = dec.Decode(&value)
		if err != nil {
			return fmt.Errorf("foreign map: value for key %q: %w", rawKey, err)
		}

		out.Set(key, value)
	}

	*f = *out

	return nil
}
