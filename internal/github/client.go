// Package github is a minimal read-only client for the pieces of the
// GitHub REST v3 API the index builder consumes: file contents, the
// repository default branch, and release tags.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/utils"
)

const (
	// DefaultAPIBaseURL is the GitHub REST v3 endpoint.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultRawBaseURL serves raw file contents per branch.
	DefaultRawBaseURL = "https://raw.githubusercontent.com"

	// acceptHeader pins the REST v3 media type on every call.
	acceptHeader = "application/vnd.github.v3+json"
)

// repoURLPattern matches github.com/<owner>/<repo> with an optional
// trailing slash.
var repoURLPattern = regexp.MustCompile(`github\.com/([^/\s]+)/([^/\s]+?)/?$`)

// Client talks to the GitHub REST v3 API. The token is passed in at
// construction and carried by value; the client never reads the
// process environment itself.
type Client struct {
	fetcher domain.Fetcher
	apiBase string
	rawBase string
	token   string
	logger  *utils.Logger
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	Fetcher domain.Fetcher
	// APIBaseURL overrides the API endpoint (e.g., for testing)
	APIBaseURL string
	// RawBaseURL overrides the raw-content endpoint
	RawBaseURL string
	// Token is an optional bearer credential; empty means the client
	// calls the API unauthenticated.
	Token  string
	Logger *utils.Logger
}

// NewClient creates a new GitHub API client
func NewClient(opts ClientOptions) *Client {
	apiBase := opts.APIBaseURL
	if apiBase == "" {
		apiBase = DefaultAPIBaseURL
	}
	rawBase := opts.RawBaseURL
	if rawBase == "" {
		rawBase = DefaultRawBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Client{
		fetcher: opts.Fetcher,
		apiBase: strings.TrimSuffix(apiBase, "/"),
		rawBase: strings.TrimSuffix(rawBase, "/"),
		token:   opts.Token,
		logger:  logger.WithComponent("github"),
	}
}

// ParseRepoURL extracts the owner and repository name from a GitHub
// web URL. It fails with a url-shape error when the URL does not match
// github.com/<owner>/<repo> or either segment is empty.
func ParseRepoURL(rawURL string) (owner, repo string, err error) {
	match := repoURLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", "", domain.NewRepoError(domain.KindURLShape, rawURL, domain.ErrBadRepoURL)
	}

	owner, repo = match[1], match[2]
	if owner == "" || repo == "" {
		return "", "", domain.NewRepoError(domain.KindURLShape, rawURL,
			fmt.Errorf("%w: empty owner or repository name", domain.ErrBadRepoURL))
	}

	return owner, repo, nil
}

// CanonicalRepoURL returns the normalized web URL for an owner/repo
// pair, with a trailing slash.
func CanonicalRepoURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s/", owner, repo)
}

// RawContentURL returns the raw-content URL for a file under the given
// branch.
func (c *Client) RawContentURL(owner, repo, branch string, segments ...string) string {
	return utils.JoinURL(c.rawBase, append([]string{owner, repo, branch}, segments...)...)
}

// contentsResponse is the payload of the file-contents endpoint.
type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Manifest fetches and parses the extension manifest from the
// repository root via the contents API. The API returns the file
// base64-encoded.
func (c *Client) Manifest(ctx context.Context, owner, repo string) (*domain.RawManifest, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.apiBase, owner, repo, domain.ManifestFilename)

	resp, err := c.fetcher.GetWithHeaders(ctx, url, c.headers())
	if err != nil {
		return nil, domain.NewRepoError(domain.KindFetch, CanonicalRepoURL(owner, repo), err)
	}

	var contents contentsResponse
	if err := json.Unmarshal(resp.Body, &contents); err != nil {
		return nil, domain.NewRepoError(domain.KindParse, url, err)
	}

	// The contents API wraps base64 at 60 columns.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(contents.Content, "\n", ""))
	if err != nil {
		return nil, domain.NewRepoError(domain.KindParse, url,
			fmt.Errorf("invalid base64 content: %w", err))
	}

	var manifest domain.RawManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, domain.NewRepoError(domain.KindParse, url,
			fmt.Errorf("invalid manifest: %w", err))
	}

	return &manifest, nil
}

// repoResponse is the subset of the repository metadata endpoint we use.
type repoResponse struct {
	DefaultBranch string `json:"default_branch"`
}

// DefaultBranch resolves the repository's default branch. Callers are
// expected to fall back to "main" when this fails.
func (c *Client) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.apiBase, owner, repo)

	resp, err := c.fetcher.GetWithHeaders(ctx, url, c.headers())
	if err != nil {
		return "", err
	}

	var meta repoResponse
	if err := json.Unmarshal(resp.Body, &meta); err != nil {
		return "", fmt.Errorf("invalid repository metadata: %w", err)
	}
	if meta.DefaultBranch == "" {
		return "", fmt.Errorf("repository metadata missing default branch")
	}

	return meta.DefaultBranch, nil
}

// releaseResponse is the subset of a release entry we use.
type releaseResponse struct {
	TagName string `json:"tag_name"`
}

// ReleaseTags fetches the tag names of the repository's published
// releases, in the order the API returns them (newest first).
func (c *Client) ReleaseTags(ctx context.Context, owner, repo string) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases", c.apiBase, owner, repo)

	resp, err := c.fetcher.GetWithHeaders(ctx, url, c.headers())
	if err != nil {
		return nil, err
	}

	var releases []releaseResponse
	if err := json.Unmarshal(resp.Body, &releases); err != nil {
		return nil, fmt.Errorf("invalid releases payload: %w", err)
	}

	tags := make([]string, 0, len(releases))
	for _, rel := range releases {
		tags = append(tags, rel.TagName)
	}

	return tags, nil
}

// headers returns the headers attached to every API call. The token
// header is omitted entirely when no credential is configured;
// unauthenticated calls are valid under the platform's rate limits.
func (c *Client) headers() map[string]string {
	headers := map[string]string{
		"Accept": acceptHeader,
	}
	if c.token != "" {
		headers["Authorization"] = "token " + c.token
	}
	return headers
}
