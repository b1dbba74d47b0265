package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
)

func sampleInfos() []*domain.ExtensionInfo {
	record := domain.NewPackageRecord(&domain.RawManifest{
		Name:    "foo",
		Author:  "Acme",
		Version: "1.2.0",
	}, "https://github.com/Acme/ext-foo/")
	return []*domain.ExtensionInfo{
		domain.NewExtensionInfo(record, []string{"v1.2.0", "v1.1.0"}),
	}
}

// TestWriter_Write tests index serialization
func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extindex.json")
	writer := NewWriter(WriterOptions{Path: path})

	require.NoError(t, writer.Write(sampleInfos()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "acme.foo", decoded[0]["id"])
}

// TestWriter_PrettyPrinted tests 2-space indentation
func TestWriter_PrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extindex.json")
	require.NoError(t, NewWriter(WriterOptions{Path: path}).Write(sampleInfos()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  {") || strings.Contains(string(data), "{\n  "),
		"output should be indented with two spaces")
	assert.Contains(t, string(data), `  "id": "acme.foo"`)
}

// TestWriter_Overwrites tests that each run fully replaces the output
func TestWriter_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extindex.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"stale.entry"}]`), 0644))

	require.NoError(t, NewWriter(WriterOptions{Path: path}).Write(sampleInfos()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale.entry")
}

// TestWriter_NoTempLeftovers tests that staging files are cleaned up
func TestWriter_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extindex.json")
	require.NoError(t, NewWriter(WriterOptions{Path: path}).Write(sampleInfos()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "extindex.json", entries[0].Name())
}

// TestWriter_EmptyIndex tests serializing an empty record set
func TestWriter_EmptyIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extindex.json")
	require.NoError(t, NewWriter(WriterOptions{Path: path}).Write([]*domain.ExtensionInfo{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

// TestNewWriter_DefaultPath tests the default output filename
func TestNewWriter_DefaultPath(t *testing.T) {
	assert.Equal(t, "extindex.json", NewWriter(WriterOptions{}).Path())
}
