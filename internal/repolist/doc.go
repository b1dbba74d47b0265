// Package repolist provides types and utilities for loading the
// repository list that drives index generation. The list maps author
// names to the repositories they publish, and its declaration order
// determines the order of the generated index.
//
// # List Format
//
// Lists can be written in JSON (the canonical repositories.json) or
// YAML:
//
//	{
//	  "repositories": {
//	    "Acme": [
//	      "https://github.com/Acme/ext-foo",
//	      "https://example.com/ext-bar"
//	    ]
//	  }
//	}
//
// # Usage
//
// Load a repository list:
//
//	loader := repolist.NewLoader()
//	list, err := loader.Load("repositories.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, author := range list.Authors {
//	    // Process each repository in author.Repositories
//	}
//
// Author and repository order is preserved exactly as declared in the
// file; a plain map would lose it.
package repolist
