package messages

// Interactive selector prompts and errors.
const (
	SelectorInstallTypeTitle = "What would you like to install?"
	SelectorOptionFull       = "Full installation (all components and language skills)"
	SelectorOptionCore       = "Core installation (language-agnostic components only)"
	SelectorOptionCustom     = "Custom installation (choose each component)"
	SelectorOptionCancel     = "Cancel"

	SelectorAgentsPrompt        = "Install agents?"
	SelectorCommandsPrompt      = "Install slash commands?"
	SelectorSkillsPrompt        = "Install skills?"
	SelectorLanguageSkillPrompt = "Install language-specific skills too?"
	SelectorRulesPrompt         = "Install rules?"
	SelectorUserConfigPrompt    = "Install the user-level CLAUDE.md?"
	SelectorHooksPrompt         = "Install hooks?"

	SelectorLanguagesTitle  = "Select language skills to install"
	SelectorMultiSelectHint = "Enter numbers separated by spaces, 'all' or 'none'"
	SelectorToggleHint      = "space toggles, enter confirms"
	SelectorChoiceRangeFmt  = "Enter choice [1-%d]"
	SelectorOptionLineFmt   = "  %d) %s\n"
	SelectorKeyCancel       = "cancel"

	SelectorCancelled        = "selection cancelled"
	SelectorInvalidChoice    = "invalid choice"
	SelectorInvalidChoiceFmt = "%w: %q"
	SelectorRequiresTerminal = "interactive selection requires a terminal"
	SelectorOptionsRequired  = "selector options are required"
)
