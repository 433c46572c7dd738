package abi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"abi-input/witness"
)

// Visibility of a parameter to the verifier.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// Parameter is a single named program input.
type Parameter struct {
	Name       string     `yaml:"name"`
	Type       *Type      `yaml:"type"`
	Visibility Visibility `yaml:"visibility,omitempty"`
}

// Abi is the program interface.
type Abi struct {
	Parameters []Parameter `yaml:"parameters"`
	// ParamWitnesses lists, per parameter name, the witness indices its
	// flattened value occupies.
	ParamWitnesses  map[string][]witness.Index `yaml:"param_witnesses"`
	ReturnType      *Type                      `yaml:"return_type"`
	ReturnWitnesses []witness.Index            `yaml:"return_witnesses"`
}

// Parameter returns the named parameter.
func (a *Abi) Parameter(name string) (*Parameter, bool) {
	for i := range a.Parameters {
		if a.Parameters[i].Name == name {
			return &a.Parameters[i], true
		}
	}

	return nil, false
}

// ParameterNames returns the parameter names in declared order.
func (a *Abi) ParameterNames() []string {
	names := make([]string, 0, len(a.Parameters))
	for _, p := range a.Parameters {
		names = append(names, p.Name)
	}

	return names
}

// FieldCount returns the number of field elements taken by all parameters.
func (a *Abi) FieldCount() int {
	n := 0
	for _, p := range a.Parameters {
		if p.Type != nil {
			n += p.Type.FieldCount()
		}
	}

	return n
}

// LoadFile loads and parses an ABI file (JSON or YAML) from the given path.
func LoadFile(path string) (*Abi, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read abi file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses JSON or YAML data into an Abi.
func Parse(data []byte) (*Abi, error) {
	var a Abi

	err := yaml.Unmarshal(data, &a)
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}

	if a.ParamWitnesses == nil {
		a.ParamWitnesses = map[string][]witness.Index{}
	}

	return &a, nil
}

// Marshal serializes an Abi to YAML.
func Marshal(a *Abi) ([]byte, error) {
	return yaml.Marshal(a)
}
