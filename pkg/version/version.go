// Package version reports the listpager build version.
package version

import "runtime/debug"

// version is set at build time with
// -ldflags "-X github.com/rshade/listpager/pkg/version.version=v1.2.3".
var version = "" //nolint:gochecknoglobals // Set via ldflags.

const devVersion = "dev"

// GetVersion returns the build version: the ldflags value when set, else the
// main module version recorded by the Go toolchain, else "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return devVersion
}
