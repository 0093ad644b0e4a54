package messages

// CLI messages for the root command, summary, and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "claude-kit"
	// RootShort is the short description for the root command.
	RootShort = "Install agents, commands, skills, rules and hooks into ~/.claude"
	// RootLongFmt is the long description; the placeholder receives the supported languages.
	RootLongFmt = `Install the bundled Claude configuration into your per-user configuration directory.

Without flags an interactive menu asks what to install. Existing agents,
commands, skills, rules, CLAUDE.md and settings.json are copied to a
timestamped directory under backups/ before anything is overwritten.

Supported languages: %s`
	RootExample = `  claude-kit                 interactive installation
  claude-kit --full          everything, prompts for languages
  claude-kit --core          everything except language skills
  claude-kit --lang go rust  everything with the given languages
  claude-kit --uninstall     remove installed components`

	RootVersionFlag = "Print version and exit"

	FlagFull      = "Full installation; prompts only for language selection"
	FlagCore      = "Core installation without language-specific skills"
	FlagLang      = "Full installation with the given languages (space or comma separated)"
	FlagUninstall = "Remove installed components (asks for confirmation)"
	FlagSource    = "Source bundle directory (default: current directory)"
	FlagTarget    = "Target installation directory (default: ~/.claude)"
	FlagConfig    = "Path to a TOML config file"
	FlagLogLevel  = "Log level (panic, fatal, error, warn, info, debug, trace)"
	FlagNoColor   = "Disable colored output"
	FlagDiffLines = "Maximum settings.json diff lines shown when hooks cannot be installed"

	RootLangArgsWithoutFlag   = "positional arguments are only accepted with --lang"
	RootLangRequiresValue     = "--lang requires at least one language"
	RootInvalidLogLevelFmt    = "invalid log level %q: %w"
	RootResolveWorkingDirFmt  = "resolve working directory: %w"
	RootModeFlagValueFmt      = "invalid value %q for --%s: %w"
	RootDiffLinesInvalidFmt   = "--diff-lines must be positive, got %d"
	RootUnsupportedLangFmt    = "%q is not a supported language (supported: %s); installing it only if the bundle has a skill file"
	InstallationCancelled     = "Installation cancelled. No changes were made."
	InstallationEmptyPlan     = "Nothing selected to install."
	SummarySection            = "Installation complete"
	SummaryComponentFmt       = "%-12s %d files"
	SummaryComponentSkipFmt   = "%-12s not in source bundle"
	SummaryUserConfig         = "CLAUDE.md"
	SummaryMCPExample         = "mcp-servers.example.json"
	SummaryHooksSettings      = "hooks -> settings.json"
	SummaryHooksExample       = "hooks -> hooks.json.example (merge manually)"
	SummaryHooksUnchanged     = "hooks (already in settings.json)"
	SummaryLanguagesFmt       = "Language skills: %s"
	SummaryNoLanguages        = "Language skills: none"
	SummaryBackupFmt          = "Backup: %s"
	SummaryNoBackup           = "Backup: nothing to back up"
	SummaryTargetFmt          = "Installed into %s"
	SummaryNextStepsSection   = "Next steps"
	SummaryNextStepFmt        = "%d. %s"
	SummaryNextStepEditConfig = "Review and customize CLAUDE.md"
	SummaryNextStepMCPFmt     = "Copy the servers you need from %s into your MCP configuration"
	SummaryNextStepHooksFmt   = "Merge the hooks from %s into settings.json"
	SummaryNextStepRestart    = "Restart Claude Code to load the new agents, commands and skills"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt = "%s [Y/n]: "
	PromptNoDefaultFmt  = "%s [y/N]: "
	PromptRetryYesNo    = "Please enter y or n."
	PromptInputFmt      = "%s: "

	// PresenterSuccessFmt prefixes completed steps.
	PresenterSuccessFmt = "✓ %s\n"
	PresenterWarningFmt = "⚠ Warning: %s\n"
	PresenterErrorFmt   = "✗ Error: %v\n"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)
