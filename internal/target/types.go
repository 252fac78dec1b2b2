package target

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File represents a complete target file
type File struct {
	Targets []Target `yaml:"targets" json:"targets"`
	Options Options  `yaml:"options" json:"options"`
}

// Target describes one manifest to generate
type Target struct {
	Dest     string        `yaml:"dest" json:"dest"`
	BaseURL  string        `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Cache    CacheSpec     `yaml:"cache,omitempty" json:"cache,omitempty"`
	Network  []string      `yaml:"network,omitempty" json:"network,omitempty"`
	Fallback []string      `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Includes []string      `yaml:"includes,omitempty" json:"includes,omitempty"`
	Ignored  []string      `yaml:"ignored,omitempty" json:"ignored,omitempty"`
	Options  TargetOptions `yaml:"options,omitempty" json:"options,omitempty"`
}

// CacheSpec lists the sources of CACHE entries
type CacheSpec struct {
	Patterns   []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Literals   []string `yaml:"literals,omitempty" json:"literals,omitempty"`
	PagesLinks []string `yaml:"pageslinks,omitempty" json:"pageslinks,omitempty"`
}

type cacheSpecFields CacheSpec

// UnmarshalYAML accepts either a list of patterns or a mapping
func (c *CacheSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var patterns []string
		if err := value.Decode(&patterns); err != nil {
			return err
		}
		*c = CacheSpec{Patterns: patterns}
		return nil
	}

	var fields cacheSpecFields
	if err := value.Decode(&fields); err != nil {
		return err
	}
	*c = CacheSpec(fields)
	return nil
}

// UnmarshalJSON accepts either an array of patterns or an object
func (c *CacheSpec) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var patterns []string
		if err := json.Unmarshal(trimmed, &patterns); err != nil {
			return err
		}
		*c = CacheSpec{Patterns: patterns}
		return nil
	}

	var fields cacheSpecFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*c = CacheSpec(fields)
	return nil
}

// TargetOptions override the configured defaults for one target.
// Nil pointers mean "use the default".
type TargetOptions struct {
	BasePath       string `yaml:"base_path,omitempty" json:"base_path,omitempty"`
	IgnoreManifest *bool  `yaml:"ignore_manifest,omitempty" json:"ignore_manifest,omitempty"`
	PreferOnline   *bool  `yaml:"prefer_online,omitempty" json:"prefer_online,omitempty"`
}

// Options represents batch-wide options. A zero Concurrency defers to the
// configured worker count.
type Options struct {
	ContinueOnError bool `yaml:"continue_on_error" json:"continue_on_error"`
	Concurrency     int  `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`
}

// Validate validates the target file
func (f *File) Validate() error {
	if len(f.Targets) == 0 {
		return ErrNoTargets
	}
	for i, t := range f.Targets {
		if t.Dest == "" {
			return fmt.Errorf("target %d: %w", i, ErrEmptyDest)
		}
	}
	return CheckDistinct(f.Targets)
}

// CheckDistinct fails when two targets resolve to the same destination file
func CheckDistinct(targets []Target) error {
	seen := make(map[string]int, len(targets))
	for i, t := range targets {
		key := destKey(t.Dest)
		if first, ok := seen[key]; ok {
			return fmt.Errorf("targets %d and %d: %w: %s", first, i, ErrDuplicateDest, t.Dest)
		}
		seen[key] = i
	}
	return nil
}

func destKey(dest string) string {
	if abs, err := filepath.Abs(dest); err == nil {
		return abs
	}
	return filepath.Clean(dest)
}
