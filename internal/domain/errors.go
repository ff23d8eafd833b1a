package domain

import "errors"

var (
	// ErrValidation covers missing required fields and module types
	// outside the closed set. The caller must fix the input.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateSlug means the slug already exists somewhere in the
	// store. Slugs are unique across all verticals, not per vertical.
	ErrDuplicateSlug = errors.New("slug already in use")

	// ErrDuplicateCategory means the (name, module type) pair already
	// exists. Category names are unique per vertical only.
	ErrDuplicateCategory = errors.New("category already exists for this module type")

	// ErrNotFound is the expected outcome of a lookup that matched
	// nothing, not an exceptional condition.
	ErrNotFound = errors.New("not found")
)
