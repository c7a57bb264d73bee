package definitionfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLSource implements the DefinitionSource interface by reading a YAML
// file. Mappings become sections and keep their file order; scalars become
// entries; a sequence of scalars becomes one comma-separated entry value.
type YAMLSource struct {
	filePath string
}

// NewYAMLSource creates a new YAMLSource.
// filePath is the path to the alias definition file.
func NewYAMLSource(filePath string) (ports.DefinitionSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLSource{filePath: filePath}, nil
}

// Location returns the file path.
func (s *YAMLSource) Location() string {
	return s.filePath
}

// Load reads and parses the definition file. A missing or unreadable file is
// an error; an empty file is an empty document.
func (s *YAMLSource) Load() (alias.Document, error) {
	doc := alias.Document{Source: s.filePath, Root: alias.Node{Section: true}}

	content, err := os.ReadFile(s.filePath)
	if err != nil {
		return alias.Document{}, fmt.Errorf("failed to read alias definitions file %s: %w", s.filePath, err)
	}
	root, err := Parse(content)
	if err != nil {
		return alias.Document{}, fmt.Errorf("failed to parse alias definitions from %s: %w", s.filePath, err)
	}
	doc.Root = root
	return doc, nil
}

// Parse converts YAML content into a root section node.
func Parse(content []byte) (alias.Node, error) {
	root := alias.Node{Section: true}
	if len(bytes.TrimSpace(content)) == 0 {
		return root, nil
	}

	var file yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	if err := decoder.Decode(&file); err != nil {
		// A document holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return root, nil
		}
		return alias.Node{}, err
	}
	if len(file.Content) == 0 {
		return root, nil
	}
	top := file.Content[0]
	if top.Kind == yaml.ScalarNode && top.Tag == "!!null" {
		return root, nil
	}
	if top.Kind != yaml.MappingNode {
		return alias.Node{}, fmt.Errorf("line %d: the top level must be a mapping", top.Line)
	}
	children, err := convertMapping(top)
	if err != nil {
		return alias.Node{}, err
	}
	root.Children = children
	return root, nil
}

func convertMapping(m *yaml.Node) ([]alias.Node, error) {
	children := make([]alias.Node, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: keys must be plain text", key.Line)
		}
		n := alias.Node{Key: key.Value, Line: key.Line}

		switch value.Kind {
		case yaml.MappingNode:
			sub, err := convertMapping(value)
			if err != nil {
				return nil, err
			}
			n.Section, n.Children = true, sub
		case yaml.ScalarNode:
			if value.Tag != "!!null" {
				n.Value = value.Value
			}
		case yaml.SequenceNode:
			joined, err := joinSequence(value)
			if err != nil {
				return nil, err
			}
			n.Value = joined
		case yaml.AliasNode:
			if value.Alias == nil || value.Alias.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: only scalar anchors can be referenced", value.Line)
			}
			n.Value = value.Alias.Value
		default:
			return nil, fmt.Errorf("line %d: unsupported value for '%s'", value.Line, key.Value)
		}
		children = append(children, n)
	}
	return children, nil
}

func joinSequence(seq *yaml.Node) (string, error) {
	parts := make([]string, 0, len(seq.Content))
	for _, item := range seq.Content {
		if item.Kind != yaml.ScalarNode {
			return "", fmt.Errorf("line %d: lists may only contain plain values", item.Line)
		}
		parts = append(parts, item.Value)
	}
	return strings.Join(parts, ", "), nil
}
