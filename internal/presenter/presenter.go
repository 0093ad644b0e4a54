// Package presenter renders operator-facing console output: success lines,
// warnings, errors, and section headers, with optional color.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/claude-kit/internal/messages"
)

// Presenter writes colored status lines to an output and an error stream.
type Presenter struct {
	out     io.Writer
	errOut  io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
	header  *color.Color
}

// New creates a Presenter. When noColor is set, color codes are never emitted;
// otherwise fatih/color decides based on the terminal.
func New(out io.Writer, errOut io.Writer, noColor bool) *Presenter {
	p := &Presenter{
		out:     out,
		errOut:  errOut,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
		header:  color.New(color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.success, p.warning, p.failure, p.header} {
			c.DisableColor()
		}
	}
	return p
}

// Success prints a check-marked line.
func (p *Presenter) Success(message string) {
	_, _ = p.success.Fprintf(p.out, messages.PresenterSuccessFmt, message)
}

// Warning prints a warning line. Warnings never change the exit status.
func (p *Presenter) Warning(message string) {
	_, _ = p.warning.Fprintf(p.out, messages.PresenterWarningFmt, message)
}

// Info prints a plain line.
func (p *Presenter) Info(message string) {
	_, _ = fmt.Fprintln(p.out, message)
}

// Error prints err to the error stream.
func (p *Presenter) Error(err error) {
	if err == nil {
		return
	}
	_, _ = p.failure.Fprintf(p.errOut, messages.PresenterErrorFmt, err)
}

// Section prints a bold title underlined with dashes, preceded by a blank line.
func (p *Presenter) Section(title string) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = p.header.Fprintln(p.out, title)
	_, _ = p.header.Fprintln(p.out, strings.Repeat("-", len(title)))
}
