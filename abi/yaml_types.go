package abi

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawType is the on-disk shape of a Type. Fields stays a raw node because it
// may be either a sequence or a mapping.
type rawType struct {
	Kind   string    `yaml:"kind"`
	Sign   Sign      `yaml:"sign,omitempty"`
	Width  uint32    `yaml:"width,omitempty"`
	Length uint32    `yaml:"length,omitempty"`
	Type   *Type     `yaml:"type,omitempty"`
	Fields yaml.Node `yaml:"fields,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Type.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected type object, got %s", node.Line, nodeKindName(node.Kind))
	}

	var raw rawType

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	kind, ok := ParseKind(raw.Kind)
	if !ok {
		return fmt.Errorf("line %d: unknown type kind %q", node.Line, raw.Kind)
	}

	out := Type{Kind: kind}

	switch kind {
	case KindField, KindBoolean:
	case KindInteger:
		if raw.Sign != Signed && raw.Sign != Unsigned {
			return fmt.Errorf("line %d: invalid integer sign %q", node.Line, raw.Sign)
		}

		out.Sign = raw.Sign
		out.Width = raw.Width
	case KindString:
		out.Length = raw.Length
	case KindArray:
		if raw.Type == nil {
			return fmt.Errorf("line %d: array type has no element type", node.Line)
		}

		out.Length = raw.Length
		out.Elem = raw.Type
	case KindStruct:
		fields, err := decodeStructFields(&raw.Fields)
		if err != nil {
			return err
		}

		out.Fields = fields
	}

	*t = out

	return nil
}

// decodeStructFields accepts:
//   - a sequence of {name, type} objects
//   - a mapping of name to type, keeping document order
func decodeStructFields(node *yaml.Node) ([]StructField, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.SequenceNode:
		fields := make([]StructField, 0, len(node.Content))

		for _, item := range node.Content {
			var f StructField

			err := item.Decode(&f)
			if err != nil {
				return nil, err
			}

			if f.Type == nil {
				return nil, fmt.Errorf("line %d: struct field %q has no type", item.Line, f.Name)
			}

			fields = append(fields, f)
		}

		return fields, nil
	case yaml.MappingNode:
		fields := make([]StructField, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			var typ Type

			err := valNode.Decode(&typ)
			if err != nil {
				return nil, err
			}

			fields = append(fields, StructField{Name: keyNode.Value, Type: &typ})
		}

		return fields, nil
	default:
		return nil, errors.New("struct fields must be a list or an object")
	}
}

// MarshalYAML implements custom YAML marshaling for Type. Struct fields are
// always written in list form.
func (t *Type) MarshalYAML() (any, error) {
	out := map[string]any{"kind": t.Kind.String()}

	switch t.Kind {
	case KindInteger:
		out["sign"] = string(t.Sign)
		out["width"] = t.Width
	case KindString:
		out["length"] = t.Length
	case KindArray:
		out["length"] = t.Length
		out["type"] = t.Elem
	case KindStruct:
		fields := make([]StructField, len(t.Fields))
		copy(fields, t.Fields)
		out["fields"] = fields
	}

	return out, nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
