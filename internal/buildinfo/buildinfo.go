// Package buildinfo carries version metadata stamped in at link time via
// -ldflags.
package buildinfo

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = ""
)

// Short returns a compact identifier for window titles and diagnostics.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" {
		return Commit
	}
	return "dev"
}
