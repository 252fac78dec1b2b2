// Package manifest models HTML5 Application Cache manifests and converts
// them to and from their text form.
//
// # Manifest Format
//
//	CACHE MANIFEST
//	# rev: 12 2024-05-01T10:00:00.000Z
//	CACHE:
//	index.html
//	js/app.js
//	NETWORK:
//	*
//	FALLBACK:
//	/ /offline.html
//	SETTINGS:
//	prefer-online
//
// The first line is mandatory. Entries before any section header belong to
// CACHE. NETWORK, FALLBACK and SETTINGS are only written when non-empty.
//
// # Usage
//
//	m, err := manifest.Parse(text)
//	if err != nil {
//	    // errors.Is(err, domain.ErrFormat)
//	}
//	m.Version.Revision++
//	out := manifest.Serialize(m)
//
// # Error Handling
//
// Parse returns a *domain.FormatError wrapping one of:
//   - ErrMissingSignature: first line is not "CACHE MANIFEST"
//   - ErrRevisionRange: the rev comment holds a number that does not fit an int
package manifest
