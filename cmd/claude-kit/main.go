package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conn-castle/claude-kit/internal/messages"
	"github.com/conn-castle/claude-kit/internal/presenter"
)

var executeFunc = execute
var getwd = os.Getwd

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdin, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and streams.
func execute(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 0 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits with status 1 on any error.
func runMain(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if err := executeFunc(args, stdin, stdout, stderr); err != nil {
		presenter.New(stdout, stderr, hasNoColorFlag(args)).Error(err)
		exit(1)
	}
}

// hasNoColorFlag reports whether --no-color appears before any "--" separator.
func hasNoColorFlag(args []string) bool {
	for i, arg := range args {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimSpace(arg)
		if trimmed == "--" {
			break
		}
		if trimmed == "--"+flagNoColor || trimmed == "--"+flagNoColor+"=true" {
			return true
		}
	}
	return false
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
