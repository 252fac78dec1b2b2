package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
}

func TestLoader_Load_FileNotFound(t *testing.T) {
	loader := NewLoader()

	file, err := loader.Load("/nonexistent/path/targets.yaml")

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoader_Load_ValidYAML(t *testing.T) {
	path := writeFile(t, "targets.yaml", `
targets:
  - dest: public/manifest.appcache
    base_url: https://cdn.example.com
    cache:
      patterns: ["js/**/*.js", "css/*.css"]
      literals: ["/"]
      pageslinks: ["index.html"]
    network: ["*"]
    fallback: ["/ /offline.html"]
    includes: ["vendor/*.appcache"]
    ignored: ["js/debug/**"]
    options:
      base_path: public
      ignore_manifest: false
      prefer_online: true
  - dest: admin/manifest.appcache
    cache:
      - "admin/**/*"
options:
  continue_on_error: true
  concurrency: 2
`)

	file, err := NewLoader().Load(path)
	require.NoError(t, err)

	require.Len(t, file.Targets, 2)
	first := file.Targets[0]
	assert.Equal(t, "public/manifest.appcache", first.Dest)
	assert.Equal(t, "https://cdn.example.com", first.BaseURL)
	assert.Equal(t, []string{"js/**/*.js", "css/*.css"}, first.Cache.Patterns)
	assert.Equal(t, []string{"/"}, first.Cache.Literals)
	assert.Equal(t, []string{"index.html"}, first.Cache.PagesLinks)
	assert.Equal(t, []string{"*"}, first.Network)
	assert.Equal(t, []string{"/ /offline.html"}, first.Fallback)
	assert.Equal(t, []string{"vendor/*.appcache"}, first.Includes)
	assert.Equal(t, []string{"js/debug/**"}, first.Ignored)
	assert.Equal(t, "public", first.Options.BasePath)
	require.NotNil(t, first.Options.IgnoreManifest)
	assert.False(t, *first.Options.IgnoreManifest)
	require.NotNil(t, first.Options.PreferOnline)
	assert.True(t, *first.Options.PreferOnline)

	second := file.Targets[1]
	assert.Equal(t, []string{"admin/**/*"}, second.Cache.Patterns)
	assert.Nil(t, second.Cache.Literals)
	assert.Nil(t, second.Options.IgnoreManifest)
	assert.Nil(t, second.Options.PreferOnline)

	assert.True(t, file.Options.ContinueOnError)
	assert.Equal(t, 2, file.Options.Concurrency)
}

func TestLoader_Load_ValidJSON(t *testing.T) {
	path := writeFile(t, "targets.json", `{
		"targets": [
			{"dest": "a.appcache", "cache": ["*.js"], "network": ["*"]},
			{"dest": "b.appcache", "cache": {"literals": ["index.html"]}, "options": {"prefer_online": true}}
		],
		"options": {"concurrency": 8}
	}`)

	file, err := NewLoader().Load(path)
	require.NoError(t, err)

	require.Len(t, file.Targets, 2)
	assert.Equal(t, []string{"*.js"}, file.Targets[0].Cache.Patterns)
	assert.Equal(t, []string{"*"}, file.Targets[0].Network)
	assert.Equal(t, []string{"index.html"}, file.Targets[1].Cache.Literals)
	require.NotNil(t, file.Targets[1].Options.PreferOnline)
	assert.True(t, *file.Targets[1].Options.PreferOnline)
	assert.Equal(t, 8, file.Options.Concurrency)
	assert.False(t, file.Options.ContinueOnError)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	path := writeFile(t, "targets.yaml", `
targets:
  - dest: a.appcache
invalid_yaml: [unclosed
`)

	file, err := NewLoader().Load(path)

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	path := writeFile(t, "targets.json", `{invalid json content}`)

	file, err := NewLoader().Load(path)

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_CacheWrongShape(t *testing.T) {
	path := writeFile(t, "targets.yaml", `
targets:
  - dest: a.appcache
    cache: "js/*.js"
`)

	_, err := NewLoader().Load(path)

	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "targets.txt", "content")

	file, err := NewLoader().Load(path)

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, ErrUnsupportedExt)
}

func TestLoader_Load_YMLExtension(t *testing.T) {
	path := writeFile(t, "targets.yml", "targets:\n  - dest: a.appcache\n")

	file, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Len(t, file.Targets, 1)
}

func TestLoader_Load_ReadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.yaml")
	require.NoError(t, os.Mkdir(path, 0755))

	file, err := NewLoader().Load(path)

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.NotErrorIs(t, err, ErrFileNotFound)
	assert.Contains(t, err.Error(), "read target file")
}

func TestLoader_Load_ErrorNamesFile(t *testing.T) {
	path := writeFile(t, "targets.yaml", "targets: []\n")

	_, err := NewLoader().Load(path)

	assert.ErrorIs(t, err, ErrNoTargets)
	assert.Contains(t, err.Error(), path)
}

func TestLoader_Load_UnknownFieldRejected(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"yaml misspelled target key", "targets.yaml", "targets:\n  - dest: a.appcache\n    netwrok: [\"*\"]\n"},
		{"yaml misspelled option", "targets.yaml", "targets:\n  - dest: a.appcache\noptions:\n  workers: 2\n"},
		{"json misspelled target key", "targets.json", `{"targets": [{"dest": "a.appcache", "include": ["x"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(writeFile(t, tt.file, tt.data))

			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestLoader_Load_EmptyYAML(t *testing.T) {
	_, err := NewLoader().Load(writeFile(t, "targets.yaml", ""))

	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestLoadFromBytes_CaseInsensitiveExt(t *testing.T) {
	for _, ext := range []string{".YAML", ".Yml", ".JSON"} {
		t.Run(ext, func(t *testing.T) {
			data := "targets:\n  - dest: a.appcache\n"
			if ext == ".JSON" {
				data = `{"targets": [{"dest": "a.appcache"}]}`
			}

			file, err := NewLoader().LoadFromBytes([]byte(data), ext)

			require.NoError(t, err)
			assert.Len(t, file.Targets, 1)
		})
	}
}

func TestLoadFromBytes_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"no targets", "targets: []\n", ErrNoTargets},
		{"missing targets key", "options:\n  concurrency: 2\n", ErrNoTargets},
		{"empty dest", "targets:\n  - cache: [\"*.js\"]\n", ErrEmptyDest},
		{"duplicate dest", "targets:\n  - dest: a.appcache\n  - dest: ./a.appcache\n", ErrDuplicateDest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := NewLoader().LoadFromBytes([]byte(tt.data), ".yaml")

			assert.Nil(t, file)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromBytes_Concurrency(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected int
		wantErr  bool
	}{
		{"unset defers to config", "targets:\n  - dest: a.appcache\n", 0, false},
		{"custom", "targets:\n  - dest: a.appcache\noptions:\n  concurrency: 12\n", 12, false},
		{"negative", "targets:\n  - dest: a.appcache\noptions:\n  concurrency: -1\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := NewLoader().LoadFromBytes([]byte(tt.data), ".yaml")

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, file.Options.Concurrency)
		})
	}
}

func TestErrors(t *testing.T) {
	assert.Contains(t, ErrNoTargets.Error(), "at least one target")
	assert.Contains(t, ErrEmptyDest.Error(), "dest")
	assert.Contains(t, ErrDuplicateDest.Error(), "duplicate")
	assert.Contains(t, ErrInvalidFormat.Error(), "YAML or JSON")
	assert.Contains(t, ErrFileNotFound.Error(), "not found")
	assert.Contains(t, ErrUnsupportedExt.Error(), ".yaml")
}
