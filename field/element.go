package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Bytes is the size of the canonical big-endian form of an Element.
const Bytes = fr.Bytes

// Element is a canonical BN254 scalar field element.
// The zero value is the field's zero.
type Element struct {
	v fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.v.SetOne()

	return e
}

// NegOne returns the additive inverse of one (modulus - 1).
func NegOne() Element {
	one := One()
	return one.Neg()
}

// FromUint64 maps v into the field.
func FromUint64(v uint64) Element {
	var e Element
	e.v.SetUint64(v)

	return e
}

// FromInt64 maps v into the field, negating for negative values.
func FromInt64(v int64) Element {
	var e Element
	e.v.SetInt64(v)

	return e
}

// FromBool maps false to zero and true to one.
func FromBool(b bool) Element {
	if b {
		return One()
	}

	return Zero()
}

// FromBigInt reduces v modulo the field modulus. Negative values map to the
// additive inverse of their absolute value.
func FromBigInt(v *big.Int) Element {
	var e Element
	if v.Sign() >= 0 {
		e.v.SetBigInt(v)
		return e
	}

	abs := new(big.Int).Neg(v)
	e.v.SetBigInt(abs)
	e.v.Neg(&e.v)

	return e
}

// FromBytes interprets b as a big-endian integer and reduces it into the field.
func FromBytes(b []byte) Element {
	return FromBigInt(new(big.Int).SetBytes(b))
}

// Modulus returns a copy of the field modulus.
func Modulus() *big.Int {
	return fr.Modulus()
}

// BigInt returns the canonical residue as a new big.Int.
func (e Element) BigInt() *big.Int {
	return e.v.BigInt(new(big.Int))
}

// Bytes returns the canonical residue in big-endian form.
func (e Element) Bytes() [Bytes]byte {
	return e.v.Bytes()
}

// Uint64 returns the residue and whether it fits in 64 bits.
func (e Element) Uint64() (uint64, bool) {
	b := e.BigInt()
	if !b.IsUint64() {
		return 0, false
	}

	return b.Uint64(), true
}

func (e Element) IsZero() bool {
	return e.v.IsZero()
}

func (e Element) Equal(other Element) bool {
	return e.v.Equal(&other.v)
}

// Neg returns the additive inverse of e.
func (e Element) Neg() Element {
	var out Element
	out.v.Neg(&e.v)

	return out
}

// String returns the canonical encoding.
func (e Element) String() string {
	return Encode(e)
}

// MarshalText implements encoding.TextMarshaler using the canonical encoding.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(Encode(e)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both hex and decimal
// literals are accepted.
func (e *Element) UnmarshalText(text []byte) error {
	v, err := ParseNumeric(string(text))
	if err != nil {
		return err
	}

	*e = v

	return nil
}
