// Package version exposes the carbontally build version.
package version

// Version is the build version, overridable at link time via
// -ldflags "-X github.com/carbontally/carbontally/pkg/version.Version=...".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "0.1.0-dev"

// GetVersion returns the current build version string.
func GetVersion() string {
	return Version
}
