package manifest

import "errors"

var (
	// ErrInvalidManifest is returned when a manifest cannot be decoded or
	// declares inconsistent variables.
	ErrInvalidManifest = errors.New("invalid variable manifest")

	// ErrUnresolved is returned by Resolve when one or more variables fail.
	ErrUnresolved = errors.New("manifest variables could not be resolved")
)
