package install

// PromptFunc asks the operator a free-form question and returns the raw answer.
type PromptFunc func(prompt string) (string, error)

// uninstallConfirmation is the only answer that lets Uninstall proceed.
const uninstallConfirmation = "yes"
