// Package version exposes build-time version metadata for the huescan
// binary. Values are injected via -ldflags at release build time and
// fall back to "dev" placeholders otherwise.
package version

// Version is the semantic version of the binary.
var Version = "dev"

// Commit is the VCS commit hash the binary was built from.
var Commit = "none"

// Date is the build timestamp in RFC 3339 form.
var Date = "unknown"
