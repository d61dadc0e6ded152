package form

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/spark/internal/ui/field"
)

// specDoc accepts selectedItemValue as an alias of selectedValue.
type specDoc struct {
	field.Spec        `yaml:",inline"`
	SelectedItemValue any `yaml:"selectedItemValue"`
}

// LoadSpecs reads a field list from YAML. The document is either a sequence
// of field specs or a mapping with an "inputs" sequence:
//
//	inputs:
//	  - type: text
//	    name: title
//	  - type: checkbox
//	    name: draggable
//	    checked: true
//
// Unknown keys are ignored. Specs are not validated here; Form.New does that.
func LoadSpecs(r io.Reader) ([]field.Spec, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding field specs: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	var docs []specDoc
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&docs); err != nil {
			return nil, fmt.Errorf("decoding field specs: %w", err)
		}
	case yaml.MappingNode:
		var wrapper struct {
			Inputs []specDoc `yaml:"inputs"`
		}
		if err := node.Decode(&wrapper); err != nil {
			return nil, fmt.Errorf("decoding field specs: %w", err)
		}
		docs = wrapper.Inputs
	default:
		return nil, fmt.Errorf("decoding field specs: expected a list or an inputs mapping, got %s", kindName(node.Kind))
	}

	specs := make([]field.Spec, len(docs))
	for i, d := range docs {
		specs[i] = d.Spec
		if specs[i].SelectedValue == nil {
			specs[i].SelectedValue = d.SelectedItemValue
		}
	}
	return specs, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("node kind %d", k)
	}
}
