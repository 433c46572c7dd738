// Package diagnostic provides structured errors, warnings, and notes
// produced while checking a program ABI before it is used to encode or
// decode witnesses.
//
// Each diagnostic carries a stable code (for example "duplicate_parameter"),
// the parameter it concerns, and the dotted path inside that parameter's
// type when one applies.
package diagnostic
