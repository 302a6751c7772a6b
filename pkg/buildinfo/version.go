// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/chartkit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/chartkit/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/chartkit/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/chartkit
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// Commit is the git revision.
	Commit = "none"
	// Date is the UTC build time.
	Date = "unknown"
)

// String returns the multi-line form printed by `chartkit version`.
func String() string {
	return fmt.Sprintf("version: %s\ncommit:  %s\nbuilt:   %s", Version, Commit, Date)
}

// Short returns "version (commit)", as recorded in exported layouts.
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt:  %s\n", Version, Commit, Date)
}
