package messages

// Install, backup, and uninstall messages.
const (
	// InstallSourceRootRequired indicates the source bundle path is required.
	InstallSourceRootRequired = "source bundle path is required"
	// InstallTargetRootRequired indicates the target installation path is required.
	InstallTargetRootRequired = "target installation path is required"
	// InstallSystemRequired indicates a filesystem implementation is required.
	InstallSystemRequired = "install system is required"
	// InstallReporterRequired indicates a reporter is required.
	InstallReporterRequired = "install reporter is required"
	// InstallPromptRequired indicates a confirmation prompt is required.
	InstallPromptRequired = "confirmation prompt is required"

	InstallCreateDirFailedFmt = "failed to create directory %s: %w"
	InstallFailedReadFmt      = "failed to read %s: %w"
	InstallFailedStatFmt      = "failed to stat %s: %w"
	InstallFailedCopyFmt      = "failed to copy %s to %s: %w"
	InstallFailedRemoveFmt    = "failed to remove %s: %w"
	InstallNotDirFmt          = "%s exists but is not a directory"
	InstallNotRegularFileFmt  = "%s is not a regular file"
	InstallNotSymlinkFmt      = "%s exists and is not a symlink"
	InstallInvalidLanguageFmt = "invalid language identifier %q"

	InstallComponentMissingFmt   = "%s not found in source bundle, skipping"
	InstallComponentInstalledFmt = "Installed %s (%d files)"
	InstallLanguageMissingFmt    = "No skill file for language %q, skipping"
	InstallLanguageInstalledFmt  = "Installed %s language skills"
	InstallUserConfigMissingFmt  = "User config template %s not found in source bundle, skipping"
	InstallUserConfigInstalled   = "Installed user config CLAUDE.md"
	InstallMCPExampleInstalled   = "Installed MCP server example mcp-servers.example.json"
	InstallHooksInstalled        = "Installed hooks into settings.json"
	InstallHooksUnchanged        = "settings.json already contains the bundled hooks"
	InstallHooksExampleFmt       = "settings.json already exists; wrote hooks to %s. Merge the hooks into settings.json manually."
	InstallHooksDiffHeader       = "Differences between settings.json and the bundled hooks:"
	InstallHooksDiffTruncatedFmt = "... diff truncated (%d more lines; rerun with --diff-lines <n> to see more)"

	BackupCreatedFmt         = "Backed up existing configuration to %s"
	BackupCreateDirFailedFmt = "failed to create backup directory %s: %w"
	BackupNameExhaustedFmt   = "no free backup directory name for %s"

	UninstallConfirmPrompt   = "This will remove agents, commands, skills and rules from %s. Type 'yes' to continue"
	UninstallAborted         = "Uninstall aborted; nothing was changed."
	UninstallRemovedFmt      = "Removed %s"
	UninstallNotPresentFmt   = "%s not installed, nothing to remove"
	UninstallKeptConfigFmt   = "Kept %s and %s; remove them manually if you no longer need them."
	UninstallCompleteSection = "Uninstall complete"

	// InstallDiffLineFmt formats a single indented line of a listing.
	InstallDiffLineFmt = "  %s"
)
