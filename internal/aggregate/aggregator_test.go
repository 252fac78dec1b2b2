package aggregate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/appcache-go/internal/manifest"
)

func TestCombine_DeduplicatesFirstOccurrence(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{Literals: []string{"a.js", "b.js", "a.js"}})

	assert.Equal(t, []string{"a.js", "b.js"}, lists.Cache)
	assert.Empty(t, lists.Network)
	assert.Empty(t, lists.Fallback)
}

func TestCombine_MergeOrder(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{
		Includes: []*manifest.Manifest{
			{Cache: []string{"inc1.js", "shared.js"}, Network: []string{"https://inc/api"}, Fallback: []string{"/a /a.html"}},
			{Cache: []string{"inc2.js"}},
		},
		References: []string{"style.css", "shared.js", "ref.js"},
		Literals:   []string{"index.html", "ref.js"},
		Matched:    []string{"app.js", "inc1.js", "app.css"},
		Network:    []string{"*", "https://inc/api"},
		Fallback:   []string{"/ /offline.html"},
	})

	assert.Equal(t, []string{
		"inc1.js", "shared.js", "https://inc/api", "/a /a.html", "inc2.js",
		"style.css", "ref.js",
		"index.html",
		"app.js", "app.css",
	}, lists.Cache)
	assert.Equal(t, []string{"*", "https://inc/api"}, lists.Network)
	assert.Equal(t, []string{"/ /offline.html"}, lists.Fallback)
}

func TestCombine_IncludedSectionsBecomeCache(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{
		Includes: []*manifest.Manifest{
			{Cache: []string{"a.js"}, Network: []string{"api/"}, Fallback: []string{"/ /off.html"}},
		},
	})

	assert.Equal(t, []string{"a.js", "api/", "/ /off.html"}, lists.Cache)
	assert.Empty(t, lists.Network)
	assert.Empty(t, lists.Fallback)
}

func TestCombine_UnwritableEntriesRejected(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{
		Literals: []string{"index.html", "pages:", "# note", "CACHE:", "app.js"},
		Network:  []string{"*", "a\nb"},
	})

	assert.Equal(t, []string{"index.html", "app.js"}, lists.Cache)
	assert.Equal(t, []string{"*"}, lists.Network)
	assert.Equal(t, []string{"pages:", "# note", "CACHE:", "a\nb"}, lists.Rejected)

	parsed, err := manifest.Parse(manifest.Serialize(&manifest.Manifest{Cache: lists.Cache, Network: lists.Network}))
	require.NoError(t, err)
	assert.Equal(t, lists.Cache, parsed.Cache)
}

func TestCombine_LiteralsThenMatches(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{
		Literals: []string{"index.html"},
		Matched:  []string{"app.js", "app.css"},
		Network:  []string{"*"},
	})

	assert.Equal(t, []string{"index.html", "app.js", "app.css"}, lists.Cache)
	assert.Equal(t, []string{"*"}, lists.Network)
}

func TestCombine_DataReferencesDropped(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{References: []string{"data:image/png;base64,AAA", "app.js"}})

	assert.Equal(t, []string{"app.js"}, lists.Cache)
}

func TestCombine_IgnoredOnlyFiltersPatternMatches(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{
		Literals: []string{"debug.js"},
		Matched:  []string{"app.js", "debug.js", "./vendor/x.js"},
		Ignored:  []string{"debug.js", "vendor/x.js"},
	})

	assert.Equal(t, []string{"debug.js", "app.js"}, lists.Cache)
}

func TestCombine_BaseURL(t *testing.T) {
	a := New(Options{BaseURL: "https://cdn.example.com/"})

	lists := a.Combine(Sources{
		Literals: []string{"/"},
		Matched:  []string{"js/app.js", "css/app.css"},
		Ignored:  []string{"css/app.css"},
	})

	assert.Equal(t, []string{"/", "https://cdn.example.com/js/app.js"}, lists.Cache)
}

func TestCombine_SelfExclusion(t *testing.T) {
	base := t.TempDir()
	dest := filepath.Join(base, "manifest.appcache")

	t.Run("enabled removes pattern match", func(t *testing.T) {
		a := New(Options{BasePath: base, ManifestPath: dest, IgnoreManifest: true})

		lists := a.Combine(Sources{Matched: []string{"index.html", "manifest.appcache", "app.js"}})

		assert.Equal(t, "manifest.appcache", a.RelativeManifestPath())
		assert.Equal(t, []string{"index.html", "app.js"}, lists.Cache)
	})

	t.Run("enabled removes literal too", func(t *testing.T) {
		a := New(Options{BasePath: base, ManifestPath: dest, IgnoreManifest: true})

		lists := a.Combine(Sources{Literals: []string{"manifest.appcache", "index.html"}})

		assert.Equal(t, []string{"index.html"}, lists.Cache)
	})

	t.Run("enabled with base url", func(t *testing.T) {
		a := New(Options{BasePath: base, ManifestPath: dest, IgnoreManifest: true, BaseURL: "/static"})

		lists := a.Combine(Sources{
			Literals: []string{"/static/manifest.appcache"},
			Matched:  []string{"manifest.appcache", "app.js"},
		})

		assert.Equal(t, []string{"/static/app.js"}, lists.Cache)
	})

	t.Run("nested destination", func(t *testing.T) {
		a := New(Options{
			BasePath:       base,
			ManifestPath:   filepath.Join(base, "public", "site.appcache"),
			IgnoreManifest: true,
		})

		lists := a.Combine(Sources{Matched: []string{"public/site.appcache", "public/app.js"}})

		assert.Equal(t, "public/site.appcache", a.RelativeManifestPath())
		assert.Equal(t, []string{"public/app.js"}, lists.Cache)
	})

	t.Run("disabled keeps it", func(t *testing.T) {
		a := New(Options{BasePath: base, ManifestPath: dest, IgnoreManifest: false})

		lists := a.Combine(Sources{Matched: []string{"manifest.appcache"}})

		assert.Equal(t, []string{"manifest.appcache"}, lists.Cache)
	})
}

func TestCombine_BlankEntriesDropped(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{
		Literals: []string{"", "  ", " index.html "},
		Network:  []string{""},
	})

	assert.Equal(t, []string{"index.html"}, lists.Cache)
	assert.Empty(t, lists.Network)
}

func TestCombine_NilIncludeSkipped(t *testing.T) {
	a := New(Options{})

	lists := a.Combine(Sources{Includes: []*manifest.Manifest{nil, {Cache: []string{"a.js"}}}})

	assert.Equal(t, []string{"a.js"}, lists.Cache)
}
