// internal/version/version.go
package version

// Version is the released tool version; overridden at build time via
// -ldflags "-X asrstat/internal/version.Version=...".
var Version = "0.3.0"
