package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
)

// Writer serializes the aggregated index to a single JSON file.
type Writer struct {
	path string
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Path string
}

// NewWriter creates a new index writer
func NewWriter(opts WriterOptions) *Writer {
	path := opts.Path
	if path == "" {
		path = "extindex.json"
	}
	return &Writer{path: path}
}

// Path returns the output file path
func (w *Writer) Path() string {
	return w.path
}

// Write serializes the records pretty-printed and replaces the output
// file. The index is staged in a temp file and renamed into place so a
// crash mid-write cannot truncate a previously written index.
func (w *Writer) Write(infos []*domain.ExtensionInfo) error {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize index: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".extindex-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace index file: %w", err)
	}

	return nil
}
