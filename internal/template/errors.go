package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template does not exist in
	// the embedded filesystem.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates a template referenced a key that is
	// absent from the render data.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a
	// dynamic token that should have been expanded.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")
)
