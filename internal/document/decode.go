package document

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/cssselect"
)

// UnmarshalYAML records the definition's position.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	type plain Definition
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = Definition(p)
	d.Pos = Pos{Line: node.Line, Column: node.Column}
	return nil
}

// UnmarshalYAML decodes `kind: value` and records the key position.
func (f *Fragment) UnmarshalYAML(node *yaml.Node) error {
	pos := Pos{Line: node.Line, Column: node.Column}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return &Error{Pos: pos, Err: ErrInvalidFragment}
	}

	key, val := node.Content[0], node.Content[1]
	kind, err := cssselect.ParseKind(key.Value)
	if err != nil {
		return &Error{Pos: Pos{Line: key.Line, Column: key.Column}, Err: err}
	}
	if val.Kind != yaml.ScalarNode {
		return &Error{Pos: Pos{Line: val.Line, Column: val.Column}, Err: fmt.Errorf("%w: %s value must be a string", ErrInvalidFragment, kind)}
	}

	*f = Fragment{
		Kind:  kind,
		Value: val.Value,
		Pos:   Pos{Line: key.Line, Column: key.Column},
	}
	return nil
}

// MarshalYAML writes the fragment back as a single-key mapping.
func (f Fragment) MarshalYAML() (any, error) {
	return map[string]string{f.Kind.String(): f.Value}, nil
}

// UnmarshalJSON decodes {"kind": "value"}.
func (f *Fragment) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFragment, err)
	}
	if len(m) != 1 {
		return ErrInvalidFragment
	}
	for k, v := range m {
		kind, err := cssselect.ParseKind(k)
		if err != nil {
			return err
		}
		*f = Fragment{Kind: kind, Value: v}
	}
	return nil
}

// MarshalJSON writes {"kind": "value"}.
func (f Fragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{f.Kind.String(): f.Value})
}
