package selector

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/claude-kit/internal/messages"
	"github.com/conn-castle/claude-kit/internal/terminal"
)

// UI defines the interaction methods the selector needs.
type UI interface {
	Select(title string, options []string, current *string) error
	MultiSelect(title string, options []string, selected *[]string) error
	Confirm(title string, value *bool) error
	Input(title string, value *string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that requires the process stdin and stdout to be terminals.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: defaultIsTerminal}
}

func defaultIsTerminal() bool {
	return terminal.IsInteractive(os.Stdin, os.Stdout)
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = defaultIsTerminal
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.SelectorRequiresTerminal)
}

// selectorKeyMap returns the keymap shared by every selector form.
// Screens cannot be revisited, so Esc and Ctrl+C both abort the form.
// The field-level Prev binding is repurposed as a display-only hint.
func selectorKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	cancel := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", messages.SelectorKeyCancel))
	km.MultiSelect.Prev = cancel
	km.Select.Prev = cancel
	km.Confirm.Prev = cancel
	km.Input.Prev = cancel

	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// hintField wraps a huh.Field so that the Prev ("esc"/"cancel") hint stays
// visible. huh disables Prev on the first field of a form on every
// WithPosition call, and every selector form has a single field.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

// Update delegates to the inner field and re-wraps so the wrapper stays in
// the group's field list.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition lets huh set positional state, then re-applies the keymap.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: selectorKeyMap()}
}

// formFilter converts InterruptMsg (huh's cancel command or an external
// SIGINT) to QuitMsg so bubbletea clears the form before returning.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// runForm validates terminal availability and runs the provided form.
// An aborted form returns ErrCancelled.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	form.WithKeyMap(selectorKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(formFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

func huhOptions(options []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	return opts
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []string, current *string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewSelect[string]().
				Title(title).
				Options(huhOptions(options)...).
				Value(current)),
		),
	))
}

// MultiSelect renders a multi-choice prompt.
func (ui *HuhUI) MultiSelect(title string, options []string, selected *[]string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewMultiSelect[string]().
				Title(title).
				Description(messages.SelectorToggleHint).
				Filterable(false).
				Options(huhOptions(options)...).
				Value(selected)),
		),
	))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewConfirm().
				Title(title).
				Value(value)),
		),
	))
}

// Input renders a plain text input prompt.
func (ui *HuhUI) Input(title string, value *string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewInput().
				Title(title).
				Value(value)),
		),
	))
}
