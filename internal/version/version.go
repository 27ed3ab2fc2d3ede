// internal/version/version.go
package version

// Version is reported by -v/--version on every tool.
const Version = "1.0.0"
