package target

import "errors"

// Sentinel errors for the target package
var (
	// ErrNoTargets indicates the file has no targets defined
	ErrNoTargets = errors.New("target file must contain at least one target")

	// ErrEmptyDest indicates a target is missing the required dest field
	ErrEmptyDest = errors.New("target dest cannot be empty")

	// ErrDuplicateDest indicates two targets share one destination
	ErrDuplicateDest = errors.New("duplicate target dest")

	// ErrInvalidFormat indicates the target file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("target file must be valid YAML or JSON")

	// ErrFileNotFound indicates the target file does not exist
	ErrFileNotFound = errors.New("target file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)
