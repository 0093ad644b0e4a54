package messages

// Config messages.
const (
	ConfigReadFailedFmt    = "failed to read config %s: %w"
	ConfigInvalidFmt       = "invalid config %s: %w"
	ConfigResolveHomeFmt   = "resolve home dir: %w"
	ConfigExpandPathFmt    = "expand path %q: %w"
	ConfigSourceMissingFmt = "source bundle %s does not exist: %w"
	ConfigSourceNotDirFmt  = "source bundle %s is not a directory"
)
