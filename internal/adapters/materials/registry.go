// Package materials provides the legacy numeric material table.
package materials

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed materials.yaml
var defaultTable []byte

type table struct {
	MaxBlockID int            `yaml:"max_block_id"`
	Materials  map[int]string `yaml:"materials"`
}

// Registry implements ports.MaterialRegistry over a fixed id table.
type Registry struct {
	maxBlockID int
	names      map[int]string
	ids        []int
}

// NewDefaultRegistry returns the registry built from the embedded table.
func NewDefaultRegistry() (ports.MaterialRegistry, error) {
	return NewRegistry(defaultTable)
}

// NewRegistry parses a YAML id table with "max_block_id" and "materials" keys.
func NewRegistry(content []byte) (ports.MaterialRegistry, error) {
	var t table
	if err := yaml.Unmarshal(content, &t); err != nil {
		return nil, fmt.Errorf("failed to parse material table: %w", err)
	}
	if len(t.Materials) == 0 {
		return nil, fmt.Errorf("material table is empty")
	}
	if t.MaxBlockID < 0 {
		return nil, fmt.Errorf("max_block_id must not be negative, got %d", t.MaxBlockID)
	}

	r := &Registry{maxBlockID: t.MaxBlockID, names: make(map[int]string, len(t.Materials))}
	for id, name := range t.Materials {
		if id < 0 {
			return nil, fmt.Errorf("material id must not be negative, got %d", id)
		}
		r.names[id] = strings.ToLower(strings.TrimSpace(name))
		r.ids = append(r.ids, id)
	}
	sort.Ints(r.ids)
	return r, nil
}

func (r *Registry) Exists(id int) bool {
	_, ok := r.names[id]
	return ok
}

func (r *Registry) MaxBlockID() int {
	return r.maxBlockID
}

func (r *Registry) DefaultName(id int) string {
	return r.names[id]
}

// IDs returns a copy of the known ids in ascending order.
func (r *Registry) IDs() []int {
	return append([]int(nil), r.ids...)
}
