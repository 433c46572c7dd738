// Package abi describes the program interface a circuit exposes: the typed
// parameters it accepts, the return type, and the witness indices each value
// occupies.
//
// Type is the schema node the input coercion engine is driven by. It is read
// from the JSON (or YAML) ABI emitted by the compiler:
//
//	{
//	  "parameters": [
//	    {"name": "foo", "type": {"kind": "field"}, "visibility": "private"},
//	    {"name": "bar", "type": {"kind": "array", "length": 2, "type": {"kind": "field"}}, "visibility": "private"}
//	  ],
//	  "param_witnesses": {"foo": [1], "bar": [2, 3]},
//	  "return_type": null,
//	  "return_witnesses": []
//	}
//
// Struct fields are given either as a list of {"name", "type"} objects or as an
// object keyed by field name. In both forms the document order is preserved
// and is authoritative for the order of struct values.
package abi
