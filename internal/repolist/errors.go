package repolist

import "errors"

// Sentinel errors for the repolist package
var (
	// ErrNoRepositories indicates the list has no repositories defined
	ErrNoRepositories = errors.New("repository list must contain at least one repository")

	// ErrEmptyAuthor indicates an entry with an empty author name
	ErrEmptyAuthor = errors.New("author name cannot be empty")

	// ErrEmptyRepository indicates an author entry with an empty repository URL
	ErrEmptyRepository = errors.New("repository URL cannot be empty")

	// ErrInvalidFormat indicates the list file is not valid JSON or YAML
	ErrInvalidFormat = errors.New("repository list must be valid JSON or YAML")

	// ErrFileNotFound indicates the list file does not exist
	ErrFileNotFound = errors.New("repository list file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")
)
