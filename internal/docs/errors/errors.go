// Package errors provides sentinel errors for loading parsed documents.
// Callers match them with errors.Is through the classified wrapper.
package errors

import "errors"

var (
	// ErrManifestRead indicates the document manifest could not be read.
	ErrManifestRead = errors.New("document manifest read failed")

	// ErrManifestParse indicates the document manifest is not valid YAML.
	ErrManifestParse = errors.New("document manifest parse failed")

	// ErrInvalidDocument indicates a manifest entry lacks a name or package.
	ErrInvalidDocument = errors.New("invalid document descriptor")

	// ErrInvalidVersion indicates a package version is not a number.
	ErrInvalidVersion = errors.New("invalid package version")
)
