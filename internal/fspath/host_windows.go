//go:build windows

package fspath

// Host is the profile of the platform the binary was built for.
var Host = Windows
