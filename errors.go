package xfs

import "errors"

var (
	// ErrOutOfBounds is returned by FileReader.Block when the requested range does not fit inside the
	// file.
	ErrOutOfBounds = errors.New("block out of bounds")

	// ErrIsDirectory is returned when a file operation targets a directory.
	ErrIsDirectory = errors.New("is a directory")
)
