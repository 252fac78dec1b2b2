package extractor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html manifest="manifest.appcache">
<head>
  <link rel="stylesheet" href="css/app.css">
  <script src="js/vendor.js"></script>
  <link rel="icon" href="data:image/png;base64,iVBORw0KGgo=">
  <script>console.log("inline")</script>
</head>
<body>
  <img src="img/logo.png">
  <script src="js/app.js"></script>
  <link rel="stylesheet" href="css/print.css" media="print">
  <script src="DATA:text/javascript,alert(1)"></script>
</body>
</html>`

func TestExtract(t *testing.T) {
	refs, err := New().Extract(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"css/app.css",
		"css/print.css",
		"js/vendor.js",
		"js/app.js",
	}, refs)
}

func TestExtract_NoReferences(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"empty", ""},
		{"plain text", "just some text"},
		{"empty attributes", `<link href=""><script src="  "></script>`},
		{"anchors and images only", `<a href="x.html">x</a><img src="y.png">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := New().Extract(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.NotNil(t, refs)
			assert.Empty(t, refs)
		})
	}
}

func TestExtract_KeepsDuplicates(t *testing.T) {
	refs, err := New().Extract(strings.NewReader(`<script src="a.js"></script><script src="a.js"></script>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "a.js"}, refs)
}

func TestExtractReader_UTF8(t *testing.T) {
	refs, err := New().ExtractReader(strings.NewReader(page), "text/html; charset=utf-8")
	require.NoError(t, err)
	assert.Len(t, refs, 4)
}

func TestExtractReader_Latin1(t *testing.T) {
	// "caf\xe9.css" is café.css in ISO-8859-1
	html := []byte(`<html><head><meta charset="iso-8859-1"><link href="caf` + "\xe9" + `.css"></head></html>`)

	refs, err := New().ExtractReader(bytes.NewReader(html), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"café.css"}, refs)
}

func TestExtractReader_ContentTypeWins(t *testing.T) {
	html := []byte(`<link href="na` + "\xef" + `ve.css">`)

	refs, err := New().ExtractReader(bytes.NewReader(html), "text/html; charset=windows-1252")
	require.NoError(t, err)
	assert.Equal(t, []string{"naïve.css"}, refs)
}

func TestExtract_DetectsEncoding(t *testing.T) {
	tests := []struct {
		name     string
		html     []byte
		expected []string
	}{
		{
			name:     "meta charset latin-1",
			html:     []byte(`<html><head><meta charset="iso-8859-1"><link href="caf` + "\xe9" + `.css"></head></html>`),
			expected: []string{"café.css"},
		},
		{
			name:     "undeclared non utf-8 falls back to windows-1252",
			html:     []byte(`<script src="d` + "\xe9" + `j` + "\xe0" + `.js"></script>`),
			expected: []string{"déjà.js"},
		},
		{
			name:     "utf-8 without declaration",
			html:     []byte(`<link href="café.css">`),
			expected: []string{"café.css"},
		},
		{
			name:     "utf-8 bom",
			html:     append([]byte("\xEF\xBB\xBF"), []byte(`<script src="naïve.js"></script>`)...),
			expected: []string{"naïve.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := New().Extract(bytes.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, refs)
		})
	}
}
