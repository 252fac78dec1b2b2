// Package extractor finds the stylesheet and script references of an HTML page.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

const dataScheme = "data:"

// Extractor collects link[href] and script[src] values
type Extractor struct{}

// New creates an Extractor
func New() *Extractor {
	return &Extractor{}
}

// Extract returns every link href followed by every script src, in document
// order. Empty values and data: URIs are skipped. The page encoding comes
// from a byte order mark or <meta charset>, falling back to UTF-8 when the
// bytes are valid UTF-8 and windows-1252 otherwise.
func (e *Extractor) Extract(r io.Reader) ([]string, error) {
	return e.ExtractReader(r, "text/html")
}

// ExtractReader is like Extract but a charset parameter in contentType
// takes precedence over the document's own declaration.
func (e *Extractor) ExtractReader(r io.Reader, contentType string) ([]string, error) {
	decoded, err := charset.NewReader(r, contentType)
	if errors.Is(err, io.EOF) {
		// empty page
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return references(doc), nil
}

func references(doc *goquery.Document) []string {
	refs := make([]string, 0)

	collect := func(selector, attr string) {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			value, ok := s.Attr(attr)
			if !ok {
				return
			}
			value = strings.TrimSpace(value)
			if value == "" || hasDataScheme(value) {
				return
			}
			refs = append(refs, value)
		})
	}

	collect("link[href]", "href")
	collect("script[src]", "src")

	return refs
}

func hasDataScheme(value string) bool {
	return len(value) >= len(dataScheme) && strings.EqualFold(value[:len(dataScheme)], dataScheme)
}
