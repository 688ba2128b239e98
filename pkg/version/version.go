// Package version exposes build metadata set via -ldflags at build time.
package version

// Build metadata. Overridden by the release pipeline:
//
//	-ldflags "-X github.com/evolvedtroglodyte/therabridge/pkg/version.Version=v1.2.3 ..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
