package source

import (
	"context"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/github"
)

// fallbackBranch is assumed when the default-branch lookup fails.
const fallbackBranch = "main"

// GitHubSource fetches manifests, default branches, and release tags
// through the GitHub REST API.
type GitHubSource struct {
	deps *Dependencies
}

// NewGitHubSource creates a new GitHub repository source
func NewGitHubSource(deps *Dependencies) *GitHubSource {
	return &GitHubSource{deps: deps}
}

// Name returns the source name
func (s *GitHubSource) Name() string {
	return string(TypeGitHub)
}

// CanHandle returns true for github.com locations
func (s *GitHubSource) CanHandle(repoURL string) bool {
	return Detect(repoURL) == TypeGitHub
}

// Fetch retrieves the manifest through the contents API and resolves
// the icon URL and release tags. Default-branch and releases lookup
// failures are absorbed: the former falls back to "main", the latter
// to an empty version list, each with a logged diagnostic. Manifest
// fetch and parse failures propagate.
func (s *GitHubSource) Fetch(ctx context.Context, repoURL string) (*domain.ExtensionInfo, error) {
	owner, repo, err := github.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	manifest, err := s.deps.GitHub.Manifest(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	record := domain.NewPackageRecord(manifest, github.CanonicalRepoURL(owner, repo))

	branch, err := s.deps.GitHub.DefaultBranch(ctx, owner, repo)
	if err != nil {
		s.deps.Logger.Warn().
			Err(err).
			Str("repo", repoURL).
			Str("branch", fallbackBranch).
			Msg("Default branch lookup failed, using fallback")
		branch = fallbackBranch
	}

	if manifest.Icon != "" {
		record.IconURL = s.deps.GitHub.RawContentURL(owner, repo, branch,
			domain.StaticAssetsDir, manifest.Icon)
	}

	versions, err := s.deps.GitHub.ReleaseTags(ctx, owner, repo)
	if err != nil {
		s.deps.Logger.Warn().
			Err(err).
			Str("repo", repoURL).
			Msg("Releases lookup failed, extension will list no versions")
		versions = nil
	}

	return domain.NewExtensionInfo(record, versions), nil
}
