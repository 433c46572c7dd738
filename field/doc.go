// Package field provides the BN254 scalar field element used by the circuit
// evaluator together with its canonical text encoding.
//
// # Encoding
//
// Elements render as "0x" followed by the lowercase hex digits of the
// canonical residue:
//
//	0x0000000000000000000000000000000000000000000000000000000000000010
//
// Decoding accepts any number of digits (odd counts are left-padded) and
// either letter case. Values wider than the modulus are reduced.
//
// # Numeric literals
//
// ParseNumeric accepts both hex literals ("0x10") and signed 128-bit decimal
// literals ("16", "-1"). Negative decimals map to the additive inverse of
// their absolute value, so "-1" is the modulus minus one.
package field
