package repolist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads and validates repository list files
type Loader struct{}

// NewLoader creates a new repository list loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a repository list from the given path
func (l *Loader) Load(path string) (*List, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository list: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a repository list from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*List, error) {
	ext = strings.ToLower(ext)

	var list List
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return &list, nil
}
