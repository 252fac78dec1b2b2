// Package aggregate merges resource entries from every configured source
// into the three ordered, duplicate-free lists of a manifest.
package aggregate

import (
	"path/filepath"
	"strings"

	"github.com/quantmind-br/appcache-go/internal/manifest"
	"github.com/quantmind-br/appcache-go/internal/utils"
)

const dataScheme = "data:"

// Options configures how sources are combined
type Options struct {
	// BasePath is the directory pattern matches are relative to
	BasePath string
	// ManifestPath is the output file of the manifest being generated
	ManifestPath string
	// IgnoreManifest keeps the manifest from listing itself in CACHE
	IgnoreManifest bool
	// BaseURL is prefixed to every pattern match when set
	BaseURL string
}

// Sources holds raw entries in merge priority order
type Sources struct {
	Includes   []*manifest.Manifest
	References []string
	Literals   []string
	Matched    []string
	Ignored    []string
	Network    []string
	Fallback   []string
}

// Lists are the aggregated manifest sections
type Lists struct {
	Cache    []string
	Network  []string
	Fallback []string
	// Rejected holds entries that cannot be written as manifest lines
	Rejected []string
}

// Aggregator combines Sources into Lists
type Aggregator struct {
	opts     Options
	selfPath string
}

// New creates an Aggregator
func New(opts Options) *Aggregator {
	a := &Aggregator{opts: opts}
	if opts.ManifestPath != "" {
		a.selfPath = utils.RelativeSlash(opts.BasePath, opts.ManifestPath)
	}
	return a
}

// RelativeManifestPath returns the manifest output path relative to BasePath
func (a *Aggregator) RelativeManifestPath() string {
	return a.selfPath
}

// Combine merges src. Cache entries are taken from includes, HTML
// references, literals and pattern matches, in that order; the first
// occurrence of an entry fixes its position. Every line of an included
// manifest, whatever its section, becomes a cache entry.
func (a *Aggregator) Combine(src Sources) Lists {
	c := collector{
		cache:    utils.NewOrderedSet[string](),
		network:  utils.NewOrderedSet[string](),
		fallback: utils.NewOrderedSet[string](),
		rejected: utils.NewOrderedSet[string](),
	}
	cache, network, fallback := c.cache, c.network, c.fallback

	for _, inc := range src.Includes {
		if inc == nil {
			continue
		}
		c.addAll(cache, inc.Cache)
		c.addAll(cache, inc.Network)
		c.addAll(cache, inc.Fallback)
	}

	for _, ref := range src.References {
		if strings.HasPrefix(ref, dataScheme) {
			continue
		}
		c.addAll(cache, []string{ref})
	}

	c.addAll(cache, src.Literals)
	c.addAll(cache, a.filterMatched(src.Matched, src.Ignored))

	c.addAll(network, src.Network)
	c.addAll(fallback, src.Fallback)

	if a.opts.IgnoreManifest && a.selfPath != "" {
		cache.Remove(a.selfPath)
		if a.opts.BaseURL != "" {
			cache.Remove(utils.JoinURL(a.opts.BaseURL, a.selfPath))
		}
	}

	return Lists{
		Cache:    cache.Items(),
		Network:  network.Items(),
		Fallback: fallback.Items(),
		Rejected: c.rejected.Items(),
	}
}

// filterMatched drops ignored paths and applies the base URL
func (a *Aggregator) filterMatched(matched, ignored []string) []string {
	skip := utils.NewOrderedSet[string]()
	for _, p := range ignored {
		skip.Add(normalize(p))
	}
	if a.opts.IgnoreManifest && a.selfPath != "" {
		skip.Add(a.selfPath)
	}

	out := make([]string, 0, len(matched))
	for _, p := range matched {
		if skip.Contains(normalize(p)) {
			continue
		}
		if a.opts.BaseURL != "" {
			p = utils.JoinURL(a.opts.BaseURL, p)
		}
		out = append(out, p)
	}
	return out
}

func normalize(p string) string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
}

type collector struct {
	cache, network, fallback, rejected *utils.OrderedSet[string]
}

// addAll trims entries into set; blanks are dropped and entries that would
// not survive a write are set aside in rejected
func (c *collector) addAll(set *utils.OrderedSet[string], entries []string) {
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !manifest.ValidEntry(e) {
			c.rejected.Add(e)
			continue
		}
		set.Add(e)
	}
}
