package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrBadRepoURL indicates a hosted repository URL does not match
	// the expected github.com/<owner>/<repo> shape.
	ErrBadRepoURL = errors.New("repository URL does not match github.com/<owner>/<repo>")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")
)

// ErrorKind classifies pipeline errors so callers can distinguish
// fatal from recoverable cases without string matching.
type ErrorKind string

const (
	// KindConfig covers a missing or malformed repository list.
	KindConfig ErrorKind = "config"
	// KindURLShape covers owner/repo extraction failures.
	KindURLShape ErrorKind = "url-shape"
	// KindFetch covers network failures and error status codes.
	KindFetch ErrorKind = "fetch"
	// KindParse covers malformed manifests and API payloads.
	KindParse ErrorKind = "parse"
)

// RepoError carries the error kind and the offending repository or
// file so the driver can report failures with context.
type RepoError struct {
	Kind ErrorKind
	Repo string
	Err  error
}

func (e *RepoError) Error() string {
	if e.Repo != "" {
		return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Repo, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *RepoError) Unwrap() error {
	return e.Err
}

// NewRepoError creates a new RepoError
func NewRepoError(kind ErrorKind, repo string, err error) *RepoError {
	return &RepoError{Kind: kind, Repo: repo, Err: err}
}

// IsKind reports whether err is (or wraps) a RepoError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RepoError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// FetchError represents an error during fetching
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// RetryableError indicates an error that can be retried
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.StatusCode {
		case 502, 503, 504:
			return true
		}
	}

	return errors.Is(err, ErrTimeout)
}
