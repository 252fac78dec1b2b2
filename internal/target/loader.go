package target

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// decoders maps a lower-cased file extension to a strict decoder.
// Unknown keys are rejected so a misspelled field fails the load instead of
// silently producing a manifest without it.
var decoders = map[string]func(data []byte, file *File) error{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".json": decodeJSON,
}

// Loader reads target files
type Loader struct{}

// NewLoader creates a new target file loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the target file at path. The decoder is chosen by extension.
func (l *Loader) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read target file %s: %w", path, err)
	}

	file, err := l.LoadFromBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// LoadFromBytes decodes and validates a target file. A concurrency of zero
// is kept so the configured worker count applies.
func (l *Loader) LoadFromBytes(data []byte, ext string) (*File, error) {
	decode, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExt, ext)
	}

	var file File
	if err := decode(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if file.Options.Concurrency < 0 {
		return nil, fmt.Errorf("%w: options.concurrency must not be negative", ErrInvalidFormat)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func decodeYAML(data []byte, file *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeJSON(data []byte, file *File) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(file)
}
