// Package fspath implements separator-aware path string algebra. Nothing in this package touches the
// filesystem.
package fspath

// Local is a machine-dependent path representation, normalized with the Host profile.
type Local = string

// Profile captures a platform's path conventions. Profiles are values: use Unix, Windows, or Host.
type Profile struct {
	name string
	// Separator emitted when rebuilding paths.
	sep byte
	// Whether the leading separator is removed after rejoining segments (e.g. `C:\a` on Windows).
	stripLeading bool
}

var (
	// Unix is the forward-slash profile.
	Unix = Profile{name: "unix", sep: '/'}

	// Windows is the backslash profile. Normalized paths carry no leading separator, except for the
	// root itself.
	Windows = Profile{name: "windows", sep: '\\', stripLeading: true}
)

// Named returns the profile with the given name. "host" (or an empty name) maps to Host.
func Named(name string) (Profile, bool) {
	switch name {
	case "", "host":
		return Host, true
	case Unix.name:
		return Unix, true
	case Windows.name:
		return Windows, true
	}
	return Profile{}, false
}

// Name returns the profile's name.
func (p Profile) Name() string { return p.name }

// Separator returns the profile's canonical separator.
func (p Profile) Separator() byte { return p.sep }

// Root returns the profile's root path, a single separator.
func (p Profile) Root() Local { return string(p.sep) }
