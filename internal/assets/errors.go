package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates the name is empty or holds characters
	// outside [A-Za-z0-9_-].
	ErrInvalidAssetName = errors.New("invalid asset name")

	ErrInvalidBasePath = errors.New("invalid base path")
	ErrAssetRead       = errors.New("failed to read asset")
	ErrPathTraversal   = errors.New("path traversal detected")
)
