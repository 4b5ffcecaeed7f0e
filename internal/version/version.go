package version

// Set at build time via ldflags.
var (
	Version = "development"
	Commit  = "unknown"
)
