// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var isTerminalFunc = term.IsTerminal

// IsInteractive reports whether in and out are both interactive terminals.
// Streams that are not *os.File values, such as buffers in tests or pipes
// wrapped by callers, are never interactive.
func IsInteractive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isTerminalFunc(int(inFile.Fd())) && isTerminalFunc(int(outFile.Fd()))
}
