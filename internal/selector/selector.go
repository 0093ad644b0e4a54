// Package selector collects an installation plan from the operator through
// three sequential screens: install type, per-component questions, and
// language selection.
package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/conn-castle/claude-kit/internal/install"
	"github.com/conn-castle/claude-kit/internal/messages"
)

var (
	// ErrCancelled means the operator chose to stop; nothing should be changed.
	ErrCancelled = errors.New(messages.SelectorCancelled)
	// ErrInvalidChoice means the install-type answer was not one of the offered options.
	ErrInvalidChoice = errors.New(messages.SelectorInvalidChoice)
)

var installTypes = []string{
	messages.SelectorOptionFull,
	messages.SelectorOptionCore,
	messages.SelectorOptionCustom,
	messages.SelectorOptionCancel,
}

// Run asks for the install type and returns the resulting plan. languages is
// the catalog offered on the language screen.
func Run(ui UI, languages []string) (install.Plan, error) {
	var choice string
	if err := ui.Select(messages.SelectorInstallTypeTitle, installTypes, &choice); err != nil {
		return install.Plan{}, err
	}

	switch choice {
	case messages.SelectorOptionFull:
		langs, err := SelectLanguages(ui, languages)
		if err != nil {
			return install.Plan{}, err
		}
		return install.FullPlan(langs), nil
	case messages.SelectorOptionCore:
		return install.CorePlan(), nil
	case messages.SelectorOptionCustom:
		return runCustom(ui, languages)
	case messages.SelectorOptionCancel:
		return install.Plan{}, ErrCancelled
	default:
		return install.Plan{}, fmt.Errorf(messages.SelectorInvalidChoiceFmt, ErrInvalidChoice, choice)
	}
}

// runCustom asks one yes/no question per component. Language selection, when
// requested, follows the last question.
func runCustom(ui UI, languages []string) (install.Plan, error) {
	var plan install.Plan
	wantLanguages := true
	questions := []struct {
		title string
		value *bool
		ask   func() bool
	}{
		{title: messages.SelectorAgentsPrompt, value: &plan.Agents},
		{title: messages.SelectorCommandsPrompt, value: &plan.Commands},
		{title: messages.SelectorSkillsPrompt, value: &plan.Skills},
		{title: messages.SelectorLanguageSkillPrompt, value: &wantLanguages, ask: func() bool { return plan.Skills }},
		{title: messages.SelectorRulesPrompt, value: &plan.Rules},
		{title: messages.SelectorUserConfigPrompt, value: &plan.UserConfig},
		{title: messages.SelectorHooksPrompt, value: &plan.Hooks},
	}
	for _, q := range questions {
		if q.ask != nil && !q.ask() {
			*q.value = false
			continue
		}
		*q.value = true
		if err := ui.Confirm(q.title, q.value); err != nil {
			return install.Plan{}, err
		}
	}

	if wantLanguages {
		langs, err := SelectLanguages(ui, languages)
		if err != nil {
			return install.Plan{}, err
		}
		plan.Languages = langs
	}
	return plan, nil
}

// SelectLanguages shows the language screen and returns the chosen identifiers.
func SelectLanguages(ui UI, languages []string) (install.LanguageSet, error) {
	var selected []string
	if err := ui.MultiSelect(messages.SelectorLanguagesTitle, languages, &selected); err != nil {
		return install.LanguageSet{}, err
	}
	return install.NewLanguageSet(selected...), nil
}

// ParseLanguageSelection turns a selection line into option values.
// Empty input and "none" select nothing; "all" selects every option in order.
// Otherwise each whitespace-separated token is a 1-based index; indices are
// deduplicated in first-seen order and invalid or out-of-range tokens are
// ignored.
func ParseLanguageSelection(input string, options []string) []string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return []string{}
	}
	if len(fields) == 1 {
		switch strings.ToLower(fields[0]) {
		case "none":
			return []string{}
		case "all":
			return append([]string{}, options...)
		}
	}

	out := []string{}
	seen := make(map[int]bool, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(options) || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, options[n-1])
	}
	return out
}
