// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Cinebox is the canonical application identifier used for filesystem paths and CLI branding.
	Cinebox = "cinebox"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with every request to the metadata API.
	UserAgent = Cinebox + "/" + Version + " (+https://github.com/cinebox-cli/cinebox)"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
