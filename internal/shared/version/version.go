// Package version exposes the build version of the application.
package version

// Current is the application version. Overridden at build time via
// -ldflags "-X opsight/internal/shared/version.Current=v1.2.3".
var Current = "dev"
