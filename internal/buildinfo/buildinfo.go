// Package buildinfo holds version information injected at build time via
// ldflags, e.g.
//
//	go build -ldflags "-X github.com/sfbackup/cleancsvs/internal/buildinfo.Version=0.7.0"
package buildinfo

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns "<version> (<codename>)".
func String() string {
	return Version + " (" + Codename + ")"
}
