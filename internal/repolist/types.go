package repolist

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AuthorEntry holds one author and their repositories, in declared order.
type AuthorEntry struct {
	Author       string
	Repositories []string
}

// List is the parsed repository list. Authors keep the order they
// appear in the source file, which fixes the order of the generated
// index.
type List struct {
	Authors []AuthorEntry
}

// Count returns the total number of repositories across all authors.
func (l *List) Count() int {
	n := 0
	for _, entry := range l.Authors {
		n += len(entry.Repositories)
	}
	return n
}

// Validate validates the repository list
func (l *List) Validate() error {
	if l.Count() == 0 {
		return ErrNoRepositories
	}
	for i, entry := range l.Authors {
		if entry.Author == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyAuthor)
		}
		for j, repo := range entry.Repositories {
			if repo == "" {
				return fmt.Errorf("author %s, repository %d: %w", entry.Author, j, ErrEmptyRepository)
			}
		}
	}
	return nil
}

// UnmarshalJSON decodes {"repositories": {author: [urls...]}} with a
// token stream so object key order survives; encoding/json maps would
// shuffle authors and break index ordering.
func (l *List) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		if key != "repositories" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
			continue
		}

		if err := l.decodeAuthors(dec); err != nil {
			return err
		}
	}

	_, err := dec.Token() // closing brace
	return err
}

func (l *List) decodeAuthors(dec *json.Decoder) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		author, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var repos []string
		if err := dec.Decode(&repos); err != nil {
			return err
		}

		l.Authors = append(l.Authors, AuthorEntry{
			Author:       author,
			Repositories: repos,
		})
	}

	_, err := dec.Token() // closing brace
	return err
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != json.Delim(want) {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// UnmarshalYAML decodes the YAML form of the list. yaml.Node preserves
// mapping key order, matching the JSON decoder's behavior.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at line %d", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]

		if key.Value != "repositories" {
			continue
		}
		if value.Kind != yaml.MappingNode {
			return fmt.Errorf("repositories must be a mapping at line %d", value.Line)
		}

		for j := 0; j+1 < len(value.Content); j += 2 {
			authorNode := value.Content[j]
			reposNode := value.Content[j+1]

			var repos []string
			if err := reposNode.Decode(&repos); err != nil {
				return err
			}

			l.Authors = append(l.Authors, AuthorEntry{
				Author:       authorNode.Value,
				Repositories: repos,
			})
		}
	}

	return nil
}
