// Package main provides the CLI entrypoint for abi-input.
//
// abi-input turns program inputs into a witness map and back:
//   - encode: coerce a JSON or YAML input file against a program ABI and
//     write the resulting witness map as a JSON object of hex strings
//   - decode: read such a witness map and print the program inputs it holds
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
