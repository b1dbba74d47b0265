// Package source implements the two repository handling strategies:
// GitHub repositories queried through the REST API, and static
// repositories serving their manifest as plain files.
package source

import (
	"context"
	"strings"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/github"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/utils"
)

// Source defines the interface for repository fetching strategies
type Source interface {
	// Name returns the source name
	Name() string
	// CanHandle returns true if this source can handle the given repository URL
	CanHandle(repoURL string) bool
	// Fetch retrieves the repository's manifest and resolves it into
	// an ExtensionInfo record
	Fetch(ctx context.Context, repoURL string) (*domain.ExtensionInfo, error)
}

// Type identifies a repository handling strategy
type Type string

const (
	TypeGitHub Type = "github"
	TypeStatic Type = "static"
)

// Detect classifies a repository location by pure string inspection.
// A github.com marker selects the GitHub API strategy; anything else
// is treated as a static file host. Never fails.
func Detect(repoURL string) Type {
	if strings.Contains(strings.ToLower(repoURL), "github.com") {
		return TypeGitHub
	}
	return TypeStatic
}

// Dependencies contains shared dependencies for all sources
type Dependencies struct {
	Fetcher domain.Fetcher
	GitHub  *github.Client
	Logger  *utils.Logger
}

// ForURL returns the source matching the repository URL.
func ForURL(repoURL string, deps *Dependencies) Source {
	switch Detect(repoURL) {
	case TypeGitHub:
		return NewGitHubSource(deps)
	default:
		return NewStaticSource(deps)
	}
}
