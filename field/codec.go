package field

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// HexPrefix marks a hex-encoded literal.
const HexPrefix = "0x"

var (
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Encode renders e as "0x" followed by the lowercase hex of its canonical
// big-endian bytes.
func Encode(e Element) string {
	b := e.Bytes()
	return HexPrefix + hex.EncodeToString(b[:])
}

// Decode parses a "0x"-prefixed hex literal. An odd number of digits is
// left-padded with a zero and values wider than the modulus are reduced.
func Decode(s string) (Element, error) {
	digits, ok := strings.CutPrefix(s, HexPrefix)
	if !ok {
		return Element{}, &ParseHexError{Text: s, Err: ErrMissingPrefix}
	}

	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Element{}, &ParseHexError{Text: s, Err: err}
	}

	return FromBytes(raw), nil
}

// ParseNumeric parses either a hex literal (delegating to Decode) or a signed
// 128-bit decimal literal.
func ParseNumeric(s string) (Element, error) {
	if strings.HasPrefix(s, HexPrefix) {
		return Decode(s)
	}

	v, err := parseInt128(s)
	if err != nil {
		return Element{}, &ParseDecimalError{Text: s, Err: err}
	}

	return FromBigInt(v), nil
}

func parseInt128(s string) (*big.Int, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return nil, ErrInvalidDigit
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, ErrInvalidDigit
		}
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidDigit
	}

	if v.Cmp(minInt128) < 0 {
		return nil, ErrNegOverflow
	}

	if v.Cmp(maxInt128) > 0 {
		return nil, ErrPosOverflow
	}

	return v, nil
}
