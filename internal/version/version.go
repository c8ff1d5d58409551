// Package version holds the release number shown by the CLI and the TUI header.
package version

// Name is the command name used in version output.
const Name = "starmap"

// Version is the current release.
const Version = "0.3.0"

// Short returns the version prefixed with "v".
func Short() string { return "v" + Version }

// String returns the name and version, e.g. "starmap v0.3.0".
func String() string { return Name + " " + Short() }

// Release history:
//
//	0.3.0  range filters, touch hit profile, metrics dump, where and render
//	0.2.0  stereographic projection, mirrored chirality, pinch and wheel zoom
//	0.1.0  dome chart, live sidereal time, star selection
