package manifest

import (
	"errors"

	"github.com/quantmind-br/appcache-go/internal/domain"
)

// ReadFile reads and parses the manifest at path. A FormatError is
// annotated with path so callers can tell which file was malformed.
func ReadFile(fs domain.FileSystem, path string) (*Manifest, error) {
	text, err := fs.ReadText(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(text)
	if err != nil {
		var formatErr *domain.FormatError
		if errors.As(err, &formatErr) {
			formatErr.Path = path
		}
		return nil, err
	}
	return m, nil
}
