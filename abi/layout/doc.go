// Package layout places typed program inputs onto witness indices and reads
// them back, following the parameter order and witness lists of an abi.Abi.
//
// A parameter's typed value is flattened depth-first in schema order: scalar
// kinds take one element, strings one element per byte, arrays their
// elements in order, and structs their fields in declared order. The i-th
// flattened element is written to the i-th witness listed for the parameter.
package layout
