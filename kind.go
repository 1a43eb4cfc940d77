package xfs

// Kind describes what a path refers to.
type Kind int

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix Kind -transform snake -text
const (
	// Nothing exists at the path, or its metadata could not be queried.
	KindMissing Kind = iota
	// A regular file.
	KindFile
	// A directory.
	KindDirectory
	// Anything else: devices, sockets, named pipes...
	KindOther
)
