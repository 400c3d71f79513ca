// Package buildinfo exposes version metadata stamped at build time:
//
//	go build -ldflags "-X github.com/shapesmith/shapesmith/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/shapesmith/shapesmith/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/shapesmith/shapesmith/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA, "none" for local builds.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// ShortCommit returns the abbreviated commit SHA.
func ShortCommit() string {
	if len(Commit) > 12 {
		return Commit[:12]
	}
	return Commit
}

// String returns the full build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, ShortCommit(), Date)
}
