// Package witness holds the evaluator's indexed value map and bridges it to
// the foreign-facing representation used across the execution boundary.
//
// A Map is keyed by small witness indices. A ForeignMap is the equivalent
// structure as the host runtime sees it: numeric (float64) keys mapped to
// canonical "0x"-prefixed hex strings, iterated in insertion order.
//
// Conversion into the foreign shape cannot fail. Conversion back treats a
// malformed key or value as a violated boundary contract and panics with a
// *ProtocolError; FromForeignSafe recovers that panic for hosts which cannot
// abort.
package witness
