package fspath

import (
	"strings"

	"github.com/gobwas/glob"
)

// separators contains all characters recognized as separators on input, regardless of profile.
// Output always uses the profile's own separator.
const separators = `/\`

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

// Normalize canonicalizes a raw path: empty and `.` segments are dropped, `..` segments are collapsed
// against their predecessor, and the survivors are rejoined with a single leading separator. An empty
// result is the root. Leading `..` segments are discarded, so "../a" becomes "/a". Normalize is
// idempotent.
func (p Profile) Normalize(raw string) Local {
	var parts []string
	for _, part := range strings.FieldsFunc(raw, isSeparator) {
		switch part {
		case ".":
		case "..":
			// Every normalized path is rooted, and the parent of the root is the root.
			if n := len(parts); n > 0 {
				parts = parts[:n-1]
			}
		default:
			parts = append(parts, part)
		}
	}

	var b strings.Builder
	for _, part := range parts {
		b.WriteByte(p.sep)
		b.WriteString(part)
	}
	normalized := b.String()
	if p.stripLeading {
		normalized = strings.TrimPrefix(normalized, string(p.sep))
	}
	if normalized == "" {
		return p.Root()
	}
	return normalized
}

// Join concatenates two path strings with exactly one separator at the boundary. If either side is
// empty, the result is empty: joining is not a no-op for empty operands.
func (p Profile) Join(lhs, rhs string) string {
	if lhs == "" || rhs == "" {
		return ""
	}
	if isSeparator(rune(lhs[len(lhs)-1])) {
		return lhs + rhs
	}
	return lhs + string(p.sep) + rhs
}

// Parent returns the parent of a normalized path. The parent of a top-level entry, or of the root,
// is the root. The result is already normalized.
func (p Profile) Parent(fp Local) Local {
	i := strings.LastIndexByte(fp, p.sep)
	if i <= 0 {
		return p.Root()
	}
	return fp[:i]
}

// IsRoot returns true iff the normalized path is the root.
func (p Profile) IsRoot(fp Local) bool {
	return fp == p.Root()
}

func (p Profile) extIndex(fp Local) int {
	dot := strings.LastIndexByte(fp, '.')
	if dot < 0 || dot < strings.LastIndexByte(fp, p.sep) {
		return -1
	}
	return dot
}

// HasExt returns true iff the path's last `.` occurs after its last separator.
func (p Profile) HasExt(fp Local) bool {
	return p.extIndex(fp) >= 0
}

// Ext returns the path's extension, without its leading dot. It is empty when HasExt is false.
func (p Profile) Ext(fp Local) string {
	i := p.extIndex(fp)
	if i < 0 {
		return ""
	}
	return fp[i+1:]
}

// ReplaceExt returns the path with its extension replaced by ext, appending one if the path has
// none. The result is not normalized.
func (p Profile) ReplaceExt(fp Local, ext string) string {
	if i := p.extIndex(fp); i >= 0 {
		fp = fp[:i]
	}
	return fp + "." + ext
}

// Match reports whether the normalized path matches a glob pattern. Single stars do not cross the
// profile's separator, double stars do.
func (p Profile) Match(pattern string, fp Local) (bool, error) {
	g, err := glob.Compile(pattern, rune(p.sep))
	if err != nil {
		return false, err
	}
	return g.Match(fp), nil
}
