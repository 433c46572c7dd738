package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"abi-input/internal/common"
)

// UnmarshalJSON decodes a JSON value, trying the shapes in this order:
// string, unsigned integer, bool, array of integers, array of strings,
// array of bools, object. null, negative or fractional numbers, and mixed or
// nested arrays are rejected. Records nested deeper than DefaultMaxDepth are
// rejected with a DepthExceeded *Error.
func (v *Value) UnmarshalJSON(data []byte) error {
	r := newJSONReader(data, DefaultMaxDepth)

	out, err := r.read("", 0)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

// jsonReader decodes untyped values from a token stream in a single pass.
type jsonReader struct {
	dec      *json.Decoder
	maxDepth int
}

func newJSONReader(data []byte, maxDepth int) *jsonReader {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	return &jsonReader{dec: dec, maxDepth: maxDepth}
}

func (r *jsonReader) read(path string, depth int) (Value, error) {
	tok, err := r.dec.Token()
	if err != nil {
		return Value{}, err
	}

	if depth > r.maxDepth {
		return Value{}, &Error{Kind: DepthExceeded, Path: path}
	}

	switch t := tok.(type) {
	case string:
		return Text(t), nil
	case bool:
		return Flag(t), nil
	case json.Number:
		return integerFromJSON(t)
	case json.Delim:
		switch t {
		case '[':
			return r.readArray()
		case '{':
			rec, err := r.readMembers(path, depth+1)
			if err != nil {
				return Value{}, err
			}

			return Value{shape: ShapeRecord, record: rec}, nil
		}
	case nil:
		return Value{}, fmt.Errorf("%w: null", ErrUnsupportedValue)
	}

	return Value{}, fmt.Errorf("%w: unexpected %v", ErrUnsupportedValue, tok)
}

// readMembers reads object members up to and including the closing brace.
// Later duplicates of a key replace earlier ones.
func (r *jsonReader) readMembers(path string, depth int) (map[string]Value, error) {
	rec := make(map[string]Value)

	for r.dec.More() {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}

		key, _ := tok.(string)

		member, err := r.read(common.JoinPath(path, key), depth)
		if err != nil {
			return nil, err
		}

		rec[key] = member
	}

	if _, err := r.dec.Token(); err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *jsonReader) readArray() (Value, error) {
	var (
		shape    = ShapeIntegers
		integers []uint64
		texts    []string
		flags    []bool
	)

	for i := 0; r.dec.More(); i++ {
		tok, err := r.dec.Token()
		if err != nil {
			return Value{}, err
		}

		var got Shape

		switch t := tok.(type) {
		case json.Number:
			item, err := integerFromJSON(t)
			if err != nil {
				return Value{}, err
			}

			got = ShapeIntegers
			integers = append(integers, item.integer)
		case string:
			got = ShapeTexts
			texts = append(texts, t)
		case bool:
			got = ShapeFlags
			flags = append(flags, t)
		case nil:
			return Value{}, fmt.Errorf("%w: null array element", ErrUnsupportedValue)
		default:
			return Value{}, fmt.Errorf("%w: nested arrays and records are not supported", ErrUnsupportedValue)
		}

		if i == 0 {
			shape = got
		} else if got != shape {
			return Value{}, fmt.Errorf("%w: mixed array", ErrUnsupportedValue)
		}
	}

	if _, err := r.dec.Token(); err != nil {
		return Value{}, err
	}

	switch shape {
	case ShapeTexts:
		return Texts(texts...), nil
	case ShapeFlags:
		return Flags(flags...), nil
	default:
		return Integers(integers...), nil
	}
}

func (r *jsonReader) expectEOF() error {
	if _, err := r.dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}

	return nil
}

func integerFromJSON(n json.Number) (Value, error) {
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, n)
	}

	return Integer(u), nil
}

// MarshalJSON encodes the value in the shape it was decoded from.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.shape {
	case ShapeText:
		return json.Marshal(v.text)
	case ShapeInteger:
		return json.Marshal(v.integer)
	case ShapeFlag:
		return json.Marshal(v.flag)
	case ShapeIntegers:
		return json.Marshal(v.integers)
	case ShapeTexts:
		return json.Marshal(v.texts)
	case ShapeFlags:
		return json.Marshal(v.flags)
	case ShapeRecord:
		return json.Marshal(v.record)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, v.shape)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Value with the same
// shape rules and nesting limit as UnmarshalJSON.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := valueFromYAML(node, "", 0, DefaultMaxDepth)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

func valueFromYAML(node *yaml.Node, path string, depth, maxDepth int) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Value{}, ErrUnsupportedValue
		}

		return valueFromYAML(node.Content[0], path, depth, maxDepth)

	case yaml.AliasNode:
		return valueFromYAML(node.Alias, path, depth, maxDepth)
	}

	if depth > maxDepth {
		return Value{}, &Error{Kind: DepthExceeded, Path: path}
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return scalarFromYAML(node)

	case yaml.SequenceNode:
		return sequenceFromYAML(node)

	case yaml.MappingNode:
		rec := make(map[string]Value, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value

			member, err := valueFromYAML(node.Content[i+1], common.JoinPath(path, key), depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}

			rec[key] = member
		}

		return Value{shape: ShapeRecord, record: rec}, nil

	default:
		return Value{}, fmt.Errorf("%w: line %d", ErrUnsupportedValue, node.Line)
	}
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!str":
		return Text(node.Value), nil
	case "!!int":
		var n uint64
		if err := node.Decode(&n); err != nil {
			return Value{}, fmt.Errorf("%w: line %d: %q", ErrUnsupportedValue, node.Line, node.Value)
		}

		return Integer(n), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}

		return Flag(b), nil
	default:
		return Value{}, fmt.Errorf("%w: line %d: %q", ErrUnsupportedValue, node.Line, node.Value)
	}
}

func sequenceFromYAML(node *yaml.Node) (Value, error) {
	items := make([]Value, 0, len(node.Content))

	for _, item := range node.Content {
		if item.Kind == yaml.AliasNode {
			item = item.Alias
		}

		if item.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("%w: line %d: nested arrays and records are not supported", ErrUnsupportedValue, item.Line)
		}

		s, err := scalarFromYAML(item)
		if err != nil {
			return Value{}, err
		}

		items = append(items, s)
	}

	switch {
	case allShape(items, ShapeInteger):
		ints := make([]uint64, len(items))
		for i, it := range items {
			ints[i] = it.integer
		}

		return Integers(ints...), nil
	case allShape(items, ShapeText):
		texts := make([]string, len(items))
		for i, it := range items {
			texts[i] = it.text
		}

		return Texts(texts...), nil
	case allShape(items, ShapeFlag):
		flags := make([]bool, len(items))
		for i, it := range items {
			flags[i] = it.flag
		}

		return Flags(flags...), nil
	default:
		return Value{}, fmt.Errorf("%w: line %d: mixed array", ErrUnsupportedValue, node.Line)
	}
}

func allShape(items []Value, shape Shape) bool {
	for _, it := range items {
		if it.shape != shape {
			return false
		}
	}

	return true
}

// Document is a parsed input file: top-level parameter name to value.
type Document map[string]Value

// UnmarshalYAML requires a mapping at the top level and decodes every member
// with Value's own rules, so explicit nulls are rejected rather than skipped.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	doc, err := documentFromYAML(node, DefaultMaxDepth)
	if err != nil {
		return err
	}

	*d = doc

	return nil
}

// UnmarshalJSON requires an object at the top level.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := documentFromJSON(data, DefaultMaxDepth)
	if err != nil {
		return err
	}

	*d = doc

	return nil
}

func documentFromYAML(node *yaml.Node, maxDepth int) (Document, error) {
	for node.Kind == yaml.DocumentNode || node.Kind == yaml.AliasNode {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
			continue
		}

		if len(node.Content) == 0 {
			return nil, fmt.Errorf("%w: empty input document", ErrUnsupportedValue)
		}

		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: input document must be a mapping", ErrUnsupportedValue)
	}

	doc := make(Document, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		v, err := valueFromYAML(node.Content[i+1], key, 0, maxDepth)
		if err != nil {
			return nil, err
		}

		doc[key] = v
	}

	return doc, nil
}

func documentFromJSON(data []byte, maxDepth int) (Document, error) {
	r := newJSONReader(data, maxDepth)

	tok, err := r.dec.Token()
	if err != nil {
		return nil, err
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: input document must be an object", ErrUnsupportedValue)
	}

	rec, err := r.readMembers("", 0)
	if err != nil {
		return nil, err
	}

	if err := r.expectEOF(); err != nil {
		return nil, err
	}

	return Document(rec), nil
}

// ParseJSON parses a JSON object of named inputs, rejecting records nested
// deeper than DefaultMaxDepth.
func ParseJSON(data []byte) (Document, error) {
	return ParseJSONWithOptions(data, Options{})
}

// ParseJSONWithOptions is ParseJSON with the nesting limit taken from opts.
// The limit is checked while reading, so an over-deep document is rejected
// before the rest of it is decoded.
func ParseJSONWithOptions(data []byte, opts Options) (Document, error) {
	doc, err := documentFromJSON(data, opts.maxDepth())
	if err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	return doc, nil
}

// ParseYAML parses a YAML mapping of named inputs, rejecting records nested
// deeper than DefaultMaxDepth.
func ParseYAML(data []byte) (Document, error) {
	return ParseYAMLWithOptions(data, Options{})
}

// ParseYAMLWithOptions is ParseYAML with the nesting limit taken from opts.
func ParseYAMLWithOptions(data []byte, opts Options) (Document, error) {
	var node yaml.Node

	err := yaml.Unmarshal(data, &node)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input YAML: %w", err)
	}

	doc, err := documentFromYAML(&node, opts.maxDepth())
	if err != nil {
		return nil, fmt.Errorf("failed to parse input YAML: %w", err)
	}

	return doc, nil
}

// LoadFile loads an input document, choosing the decoder by file extension.
// Files without a .yaml or .yml extension are read as JSON.
func LoadFile(path string) (Document, error) {
	return LoadFileWithOptions(path, Options{})
}

// LoadFileWithOptions is LoadFile with the nesting limit taken from opts.
func LoadFileWithOptions(path string, opts Options) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAMLWithOptions(data, opts)
	default:
		return ParseJSONWithOptions(data, opts)
	}
}
