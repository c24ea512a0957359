// Package version reports the edukit build version.
//
// Version, commit, branch and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/edukit/version.Version=1.2.0" ./cmd/edukit
//
// Values left unset are filled from the VCS stamp the Go toolchain embeds.
package version
