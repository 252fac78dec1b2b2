package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrMissingSignature indicates the text does not start with CACHE MANIFEST
	ErrMissingSignature = errors.New("missing \"CACHE MANIFEST\" signature line")

	// ErrRevisionRange indicates the revision comment cannot be represented
	ErrRevisionRange = errors.New("revision out of range")
)
