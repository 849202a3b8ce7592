// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the source revision the binary was built from, set by linker flags.
var Commit = ""

// String returns the version, followed by the short commit when one was recorded.
func String() string {
	if Commit == "" {
		return Version
	}
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return Version + " (" + commit + ")"
}
