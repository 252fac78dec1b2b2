// Package expander resolves glob patterns into the files they match.
package expander

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/quantmind-br/appcache-go/internal/utils"
)

// ErrAbsolutePattern indicates a pattern that is not relative to the base directory
var ErrAbsolutePattern = errors.New("pattern must be relative to the base directory")

// Expander matches patterns against a directory tree.
//
// Patterns are applied in order. A pattern adds its matches (regular files,
// sorted) unless already present; a pattern starting with "!" removes the
// entries it matches. Files and directories whose name starts with a dot
// only match when the pattern names a dot explicitly.
type Expander struct {
	root func(baseDir string) fs.FS
}

// New creates an Expander over the local disk
func New() *Expander {
	return &Expander{root: os.DirFS}
}

// NewWithFS creates an Expander that resolves base directories through root
func NewWithFS(root func(baseDir string) fs.FS) *Expander {
	return &Expander{root: root}
}

// Expand returns slash-separated paths relative to baseDir
func (e *Expander) Expand(patterns []string, baseDir string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	if baseDir == "" {
		baseDir = "."
	}
	fsys := e.root(baseDir)
	result := utils.NewOrderedSet[string]()

	for _, raw := range patterns {
		negate := strings.HasPrefix(raw, "!")
		pattern, err := cleanPattern(strings.TrimPrefix(raw, "!"))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", raw, err)
		}
		if pattern == "" {
			continue
		}

		if negate {
			for _, p := range result.Items() {
				if ok, _ := doublestar.Match(pattern, p); ok {
					result.Remove(p)
				}
			}
			continue
		}

		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", raw, err)
		}
		slices.Sort(matches)

		allowDot := mentionsDot(pattern)
		for _, m := range matches {
			if !allowDot && isHidden(m) {
				continue
			}
			info, err := fs.Stat(fsys, m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			result.Add(m)
		}
	}

	return result.Items(), nil
}

func cleanPattern(pattern string) (string, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return "", nil
	}
	if path.IsAbs(pattern) {
		return "", ErrAbsolutePattern
	}
	for strings.HasPrefix(pattern, "./") {
		pattern = strings.TrimPrefix(pattern, "./")
	}
	if !doublestar.ValidatePattern(pattern) {
		return "", doublestar.ErrBadPattern
	}
	return pattern, nil
}

func mentionsDot(pattern string) bool {
	return strings.HasPrefix(pattern, ".") || strings.Contains(pattern, "/.")
}

func isHidden(p string) bool {
	for _, segment := range strings.Split(p, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
