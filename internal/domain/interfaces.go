package domain

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mocks/domain_mock.go -package=mocks

// FileSystem is the read/exists/write surface a reconciliation cycle needs
type FileSystem interface {
	// Exists reports whether something exists at path
	Exists(path string) bool
	// ReadText returns the decoded content of path
	ReadText(path string) (string, error)
	// ReadBytes returns the raw content of path
	ReadBytes(path string) ([]byte, error)
	// WriteText replaces path with content in a single step
	WriteText(path, content string) error
}

// PathExpander resolves glob patterns into relative file paths
type PathExpander interface {
	// Expand returns the files under baseDir matching patterns,
	// deduplicated and in a stable order
	Expand(patterns []string, baseDir string) ([]string, error)
}

// ReferenceExtractor pulls resource references out of an HTML document
type ReferenceExtractor interface {
	// Extract decodes the page read from r and returns its link[href] and
	// script[src] values, excluding data: URIs
	Extract(r io.Reader) ([]string, error)
}
