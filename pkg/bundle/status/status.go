// Package status exports errors produced by the bundle package.
package status

import "github.com/oneconcern/scenebundle/pkg/errors"

var (
	// ErrInitialize indicates that the bundle directories could not be created
	ErrInitialize = errors.New("cannot initialize bundle")

	// ErrCopy indicates that a referenced file or directory could not be copied into the bundle
	ErrCopy = errors.New("cannot copy asset into bundle")

	// ErrManifest indicates that the bundle manifest could not be written
	ErrManifest = errors.New("cannot write bundle manifest")
)
