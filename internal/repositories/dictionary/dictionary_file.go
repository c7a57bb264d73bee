package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

const header = "# Flattened item alias dictionary, one 'name = value' line per alias.\n"

// DictionaryFile stores the flattened dictionary in a plain text file.
type DictionaryFile struct {
	filePath string
}

// NewDictionaryFile creates a new DictionaryFile writing to filePath.
func NewDictionaryFile(filePath string) (ports.DictionaryStore, error) {
	if filePath == "" {
		return nil, fmt.Errorf("dictionary file path cannot be empty")
	}
	return &DictionaryFile{filePath: filePath}, nil
}

func (d *DictionaryFile) Location() string {
	return d.filePath
}

// Export writes entries sorted by name. The file is written to a temporary
// sibling first and renamed into place.
func (d *DictionaryFile) Export(entries []alias.Entry) error {
	dirPath := filepath.Dir(d.filePath)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	sorted := append([]alias.Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	tmp, err := os.CreateTemp(dirPath, ".dictionary-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dirPath, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if _, err := w.WriteString(header); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dictionary header: %w", err)
	}
	for _, e := range sorted {
		if e.Type == nil {
			continue
		}
		if _, err := w.WriteString(formatEntryLine(e.Name, e.Type.ValueString())); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write alias '%s': %w", e.Name, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush dictionary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close dictionary file: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.filePath); err != nil {
		return fmt.Errorf("failed to replace dictionary file %s: %w", d.filePath, err)
	}
	return nil
}

// Read parses the dictionary file. A missing file reads as empty.
func (d *DictionaryFile) Read() (map[string]string, error) {
	entries := make(map[string]string)
	file, err := os.Open(d.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("failed to open dictionary file %s: %w", d.filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name, value, ok := parseEntryLine(scanner.Text())
		if ok {
			entries[name] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning dictionary file %s: %w", d.filePath, err)
	}
	return entries, nil
}
