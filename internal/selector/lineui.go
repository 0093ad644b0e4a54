package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/conn-castle/claude-kit/internal/messages"
)

// LineUI implements UI with numbered, line-oriented prompts. It serves piped
// input and scripted tests where no terminal is attached.
type LineUI struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineUI creates a LineUI reading answers from in and writing prompts to out.
func NewLineUI(in io.Reader, out io.Writer) *LineUI {
	return &LineUI{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. A final line without a newline is
// returned normally; io.EOF is returned only when no input remains.
func (ui *LineUI) readLine() (string, error) {
	line, err := ui.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (ui *LineUI) printOptions(title string, options []string) {
	_, _ = fmt.Fprintln(ui.out, title)
	for i, option := range options {
		_, _ = fmt.Fprintf(ui.out, messages.SelectorOptionLineFmt, i+1, option)
	}
}

// Select prints the options as a numbered list and reads one 1-based index.
// Anything other than an index in range returns ErrInvalidChoice; closed
// input returns ErrCancelled.
func (ui *LineUI) Select(title string, options []string, current *string) error {
	if len(options) == 0 {
		return fmt.Errorf(messages.SelectorOptionsRequired)
	}
	ui.printOptions(title, options)
	_, _ = fmt.Fprintf(ui.out, messages.PromptInputFmt, fmt.Sprintf(messages.SelectorChoiceRangeFmt, len(options)))

	line, err := ui.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrCancelled
		}
		return err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return fmt.Errorf(messages.SelectorInvalidChoiceFmt, ErrInvalidChoice, line)
	}
	*current = options[n-1]
	return nil
}

// MultiSelect prints the options as a numbered list and reads a selection
// in the format accepted by ParseLanguageSelection. Closed input selects nothing.
func (ui *LineUI) MultiSelect(title string, options []string, selected *[]string) error {
	ui.printOptions(title, options)
	_, _ = fmt.Fprintf(ui.out, messages.PromptInputFmt, messages.SelectorMultiSelectHint)

	line, err := ui.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	*selected = ParseLanguageSelection(line, options)
	return nil
}

// Confirm asks a yes/no question, keeping *value when the answer is empty or
// input is closed. Unrecognized answers are asked again.
func (ui *LineUI) Confirm(title string, value *bool) error {
	format := messages.PromptNoDefaultFmt
	if *value {
		format = messages.PromptYesDefaultFmt
	}
	for {
		_, _ = fmt.Fprintf(ui.out, format, title)
		line, err := ui.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch strings.ToLower(line) {
		case "":
			return nil
		case "y", "yes":
			*value = true
			return nil
		case "n", "no":
			*value = false
			return nil
		}
		_, _ = fmt.Fprintln(ui.out, messages.PromptRetryYesNo)
	}
}

// Input reads one line of free text. Closed input yields an empty answer.
func (ui *LineUI) Input(title string, value *string) error {
	_, _ = fmt.Fprintf(ui.out, messages.PromptInputFmt, title)
	line, err := ui.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	*value = line
	return nil
}
