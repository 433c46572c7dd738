package witness

import (
	"encoding/json"
	"maps"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abi-input/field"
)

func sampleMap() Map {
	return Map{
		1: field.One(),
		2: field.Zero(),
		3: field.NegOne(),
	}
}

func TestToForeign(t *testing.T) {
	fm := ToForeign(sampleMap())
	require.Equal(t, 3, fm.Len())

	var keys []float64
	fm.ForEach(func(_ string, key float64) {
		keys = append(keys, key)
	})
	assert.Equal(t, []float64{1, 2, 3}, keys)

	v, ok := fm.Get(1)
	require.True(t, ok)
	assert.Equal(t, field.Encode(field.One()), v)

	v, ok = fm.Get(3)
	require.True(t, ok)
	assert.Equal(t, "0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000000", v)
}

func TestRoundTrip(t *testing.T) {
	m := sampleMap()
	got := FromForeign(ToForeign(m))
	assert.True(t, m.Equal(got))

	empty := FromForeign(ToForeign(Map{}))
	assert.Empty(t, empty)
}

func TestToForeign_NoAliasing(t *testing.T) {
	m := sampleMap()
	fm := ToForeign(m)

	m[4] = field.One()
	assert.Equal(t, 3, fm.Len())
}

func TestFromForeign_LastWriteWins(t *testing.T) {
	fm := NewForeignMap()
	fm.Set(7, "0x01")
	fm.Set(2, "0x02")
	fm.Set(7, "0x03")

	got := FromForeign(fm)
	require.Len(t, got, 2)
	assert.True(t, field.FromUint64(3).Equal(got[7]))
	assert.True(t, field.FromUint64(2).Equal(got[2]))
}

func TestFromForeign_ProtocolViolations(t *testing.T) {
	tests := []struct {
		name  string
		key   float64
		value string
		want  error
	}{
		{name: "fractional key", key: 1.5, value: "0x01", want: ErrInvalidKey},
		{name: "negative key", key: -1, value: "0x01", want: ErrInvalidKey},
		{name: "key too large", key: math.MaxUint32 + 1, value: "0x01", want: ErrInvalidKey},
		{name: "nan key", key: math.NaN(), value: "0x01", want: ErrInvalidKey},
		{name: "bad hex", key: 1, value: "0xzz", want: ErrInvalidValue},
		{name: "decimal value", key: 1, value: "12", want: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := NewForeignMap()
			fm.Set(tt.key, tt.value)

			assert.Panics(t, func() { FromForeign(fm) })

			m, err := FromForeignSafe(fm)
			assert.Nil(t, m)
			require.ErrorIs(t, err, tt.want)

			var pe *ProtocolError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.value, pe.Value)
		})
	}
}

func TestForeignMap_NaNAndSignedZeroKeys(t *testing.T) {
	fm := NewForeignMap()
	fm.Set(math.NaN(), "0x01")
	fm.Set(math.NaN(), "0x02")
	fm.Set(0, "0x03")
	fm.Set(math.Copysign(0, -1), "0x04")

	require.Equal(t, 2, fm.Len())

	v, ok := fm.Get(math.NaN())
	require.True(t, ok)
	assert.Equal(t, "0x02", v)

	v, ok = fm.Get(0)
	require.True(t, ok)
	assert.Equal(t, "0x04", v)

	var values []string
	fm.ForEach(func(value string, _ float64) { values = append(values, value) })
	assert.Equal(t, []string{"0x02", "0x04"}, values)

	_, err := FromForeignSafe(fm)

	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.True(t, math.IsNaN(pe.Key))
	assert.Equal(t, "0x02", pe.Value)
}

func TestForeignMapJSON(t *testing.T) {
	fm := NewForeignMap()
	fm.Set(3, "0x03")
	fm.Set(1, "0x01")

	data, err := json.Marshal(fm)
	require.NoError(t, err)
	assert.JSONEq(t, `{"3":"0x03","1":"0x01"}`, string(data))
	assert.Equal(t, `{"3":"0x03","1":"0x01"}`, string(data))

	var back ForeignMap
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 2, back.Len())

	var keys []float64
	back.ForEach(func(_ string, key float64) { keys = append(keys, key) })
	assert.Equal(t, []float64{3, 1}, keys)

	err = json.Unmarshal([]byte(`{"x":"0x01"}`), &back)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`[1]`), &back)
	assert.Error(t, err)
}

func TestMapIndices(t *testing.T) {
	m := Map{9: field.One(), 0: field.One(), 4: field.Zero()}
	assert.Equal(t, []Index{0, 4, 9}, m.Indices())

	c := maps.Clone(m)
	delete(c, 9)
	assert.Len(t, m, 3)
	assert.False(t, m.Equal(c))
}
