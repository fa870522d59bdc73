// Package settings provides build metadata shared by the tabx CLI and
// library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "tabx"

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}
