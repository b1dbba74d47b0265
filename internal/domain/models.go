package domain

import "strings"

// Fixed locations inside every extension repository.
const (
	// ManifestFilename is the package descriptor each extension
	// repository serves at its root.
	ManifestFilename = "package.json"

	// StaticAssetsDir is the subdirectory holding icons and other
	// static assets.
	StaticAssetsDir = "static"

	// DefaultArtifactName is used when the manifest does not declare
	// an artifact filename.
	DefaultArtifactName = "extension.zip"
)

// RawManifest is the extension author's declared descriptor, read
// verbatim from the repository's package.json and never mutated.
type RawManifest struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName,omitempty"`
	Author       string `json:"author"`
	Version      string `json:"version"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	ArtifactName string `json:"artifactName,omitempty"`
}

// PackageRecord is the normalized record derived from a RawManifest.
type PackageRecord struct {
	ID            string `json:"id"`
	Author        string `json:"author"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	NewestVersion string `json:"newestVersion"`
	Repository    string `json:"repository"`
	IconURL       string `json:"iconUrl,omitempty"`
	ArtifactName  string `json:"artifactName"`
}

// NewPackageRecord derives a PackageRecord from a manifest and the
// resolved base location it was fetched from. Icon resolution is left
// to the caller since it depends on the repository kind.
func NewPackageRecord(m *RawManifest, repository string) PackageRecord {
	title := m.DisplayName
	if title == "" {
		title = m.Name
	}

	artifact := m.ArtifactName
	if artifact == "" {
		artifact = DefaultArtifactName
	}

	return PackageRecord{
		ID:            strings.ToLower(m.Author) + "." + strings.ToLower(m.Name),
		Author:        m.Author,
		Title:         title,
		Description:   m.Description,
		NewestVersion: m.Version,
		Repository:    repository,
		ArtifactName:  artifact,
	}
}

// ExtensionInfo is a PackageRecord plus the versions available for
// download. AvailableVersions is never nil so it serializes as [].
type ExtensionInfo struct {
	PackageRecord
	AvailableVersions []string `json:"availableVersions"`
}

// NewExtensionInfo pairs a record with its version list, normalizing a
// nil slice to an empty one.
func NewExtensionInfo(record PackageRecord, versions []string) *ExtensionInfo {
	if versions == nil {
		versions = []string{}
	}
	return &ExtensionInfo{
		PackageRecord:     record,
		AvailableVersions: versions,
	}
}
