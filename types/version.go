package types

// Version is the canonical project version.
// The CLI and library report this single version; there is no per-package
// versioning.
const Version = "0.3.0"
