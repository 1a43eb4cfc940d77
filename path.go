package xfs

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/mtth/xfs/internal/except"
	"github.com/mtth/xfs/internal/fspath"
)

// Path is an immutable, normalized path using the host's separator. Paths never end with a
// separator (except the root) and contain no `.` or collapsible `..` segments. Two paths are equal
// iff their normalized strings are, so Path values can be compared with ==. No symlinks are resolved.
//
// The zero Path is the empty path. It is returned when joining with an empty string.
type Path struct {
	path fspath.Local
}

// NewPath normalizes a raw path. Both `/` and `\` are accepted as separators. Normalization is pure
// string manipulation: relative inputs are rooted, for example "a/b" becomes "/a/b" on Unix.
func NewPath(raw string) Path {
	return Path{fspath.Host.Normalize(raw)}
}

// CurrentPath returns the working directory. Failing to determine it is unrecoverable and reported
// to the PanicHook.
func CurrentPath() Path {
	wd, err := getwd()
	if err != nil {
		except.Panic("failed to get current working directory: %v", err)
	}
	return NewPath(wd)
}

// String returns the normalized path.
func (p Path) String() string { return p.path }

// IsZero returns true iff the path is empty.
func (p Path) IsZero() bool { return p.path == "" }

// IsRoot returns true iff the path is the host's root.
func (p Path) IsRoot() bool { return fspath.Host.IsRoot(p.path) }

// Parent returns the path's parent directory. The root is its own parent.
func (p Path) Parent() Path {
	return Path{fspath.Host.Parent(p.path)}
}

// Join appends a sub-path. Joining with an empty sub-path (or joining onto the empty path) returns the
// empty path rather than p.
func (p Path) Join(sub string) Path {
	joined := fspath.Host.Join(p.path, sub)
	if joined == "" {
		return Path{}
	}
	return NewPath(joined)
}

// HasExtension returns true iff the final path element contains a dot.
func (p Path) HasExtension() bool { return fspath.Host.HasExt(p.path) }

// Extension returns the text after the final element's last dot, or an empty string.
func (p Path) Extension() string { return fspath.Host.Ext(p.path) }

// ReplaceExtension returns a path with its extension set to ext. A path without extension gains one.
func (p Path) ReplaceExtension(ext string) Path {
	return NewPath(fspath.Host.ReplaceExt(p.path, ext))
}

// Match reports whether the path matches a glob pattern. `*` stops at separators, `**` does not.
func (p Path) Match(pattern string) (bool, error) {
	return fspath.Host.Match(pattern, p.path)
}

// Exists returns true iff the host reports metadata for the path.
func (p Path) Exists() bool {
	_, err := fileSystem.Stat(p.path)
	return err == nil
}

// IsFile returns true iff the path is a regular file. Metadata query failures are logged.
func (p Path) IsFile() bool {
	info, ok := p.stat()
	return ok && info.Mode().IsRegular()
}

// IsDirectory returns true iff the path is a directory. Metadata query failures are logged.
func (p Path) IsDirectory() bool {
	info, ok := p.stat()
	return ok && info.IsDir()
}

func (p Path) stat() (fs.FileInfo, bool) {
	info, err := fileSystem.Stat(p.path)
	if err != nil {
		slog.Error("Path metadata query failed.", slog.String("path", p.path), except.LogErrAttr(err))
		return nil, false
	}
	return info, true
}

// Kind classifies what the path refers to with a single metadata query. Paths whose metadata can't
// be queried are reported as missing.
func (p Path) Kind() Kind {
	info, err := fileSystem.Stat(p.path)
	switch {
	case err != nil:
		return KindMissing
	case info.Mode().IsRegular():
		return KindFile
	case info.IsDir():
		return KindDirectory
	default:
		return KindOther
	}
}

// Create creates the path as a directory if it does not exist yet. Only the last element is created;
// see CreateAll to also create missing ancestors. Concurrent creation by another process counts as
// success.
func (p Path) Create() bool {
	if p.Exists() {
		return true
	}
	if err := fileSystem.Mkdir(p.path, dirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return false
	}
	return true
}

// CreateAll creates the path as a directory, along with any missing ancestors.
func (p Path) CreateAll() bool {
	if p.Exists() {
		return true
	}
	if !p.IsRoot() {
		if parent := p.Parent(); !parent.Exists() && !parent.CreateAll() {
			return false
		}
	}
	return p.Create()
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.path), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is normalized.
func (p *Path) UnmarshalText(text []byte) error {
	*p = NewPath(string(text))
	return nil
}
