// Package version carries the build version, set at link time with
//
//	-ldflags "-X digamma/internal/version.Version=v1.0.0"
package version

// Version is "dev" for untagged builds.
var Version = "dev"
