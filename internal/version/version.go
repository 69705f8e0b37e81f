// Package version pins the release version stamped into the CLI.
package version

// Current is the released version, without a leading "v".
const Current = "0.1.0"
