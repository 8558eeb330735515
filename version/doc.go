// Package version reports build information for seqkit binaries.
//
// Version, commit and build time are stamped at link time:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0" ./cmd/seqdemo
//
// Anything left unset falls back to the VCS settings recorded by the Go
// toolchain in the binary.
package version
