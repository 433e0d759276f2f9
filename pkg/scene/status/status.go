// Package status declares error constants returned by the scene package.
package status

import "github.com/oneconcern/scenebundle/pkg/errors"

var (
	// ErrRead indicates that the scene document could not be read
	ErrRead = errors.New("cannot read scene document")

	// ErrWrite indicates that the scene document could not be written
	ErrWrite = errors.New("cannot write scene document")

	// ErrInvalidJSON indicates that the scene document is not valid JSON
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotAnObject indicates that the scene document root is not a JSON object
	ErrNotAnObject = errors.New("scene document is not an object")

	// ErrMissingCollection indicates that a required entry collection is absent from the document
	ErrMissingCollection = errors.New("missing entry collection")

	// ErrInvalidCollection indicates that an entry collection is not an array
	ErrInvalidCollection = errors.New("entry collection is not an array")
)
