// Package version reports build information for the streamctl binary.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/gostream/version.Version=1.0.0" ./cmd/streamctl
//
// Missing values are filled from the module build info, which also carries
// the build tags that select the stream engine defaults.
package version
