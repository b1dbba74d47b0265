package source

import (
	"context"
	"encoding/json"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/utils"
)

// StaticSource fetches manifests from repositories that serve plain
// files at fixed relative paths, with no platform API available.
type StaticSource struct {
	deps *Dependencies
}

// NewStaticSource creates a new static repository source
func NewStaticSource(deps *Dependencies) *StaticSource {
	return &StaticSource{deps: deps}
}

// Name returns the source name
func (s *StaticSource) Name() string {
	return string(TypeStatic)
}

// CanHandle returns true for any non-GitHub location
func (s *StaticSource) CanHandle(repoURL string) bool {
	return Detect(repoURL) == TypeStatic
}

// Fetch retrieves <base>/package.json and derives the extension
// record. The only available version is the manifest's own.
func (s *StaticSource) Fetch(ctx context.Context, repoURL string) (*domain.ExtensionInfo, error) {
	base := utils.EnsureTrailingSlash(repoURL)

	manifestURL := base + domain.ManifestFilename
	resp, err := s.deps.Fetcher.Get(ctx, manifestURL)
	if err != nil {
		return nil, domain.NewRepoError(domain.KindFetch, repoURL, err)
	}

	var manifest domain.RawManifest
	if err := json.Unmarshal(resp.Body, &manifest); err != nil {
		return nil, domain.NewRepoError(domain.KindParse, manifestURL, err)
	}

	record := domain.NewPackageRecord(&manifest, base)
	if manifest.Icon != "" {
		record.IconURL = base + domain.StaticAssetsDir + "/" + manifest.Icon
	}

	return domain.NewExtensionInfo(record, []string{manifest.Version}), nil
}
