package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conn-castle/claude-kit/internal/install"
	"github.com/conn-castle/claude-kit/internal/messages"
)

// mode is the action selected on the command line.
type mode int

const (
	modeInteractive mode = iota
	modeFull
	modeCore
	modeLang
	modeUninstall
)

// modeRecorder keeps the first mode flag set during parsing. Later mode
// flags are accepted but ignored.
type modeRecorder struct {
	first mode
}

func (r *modeRecorder) record(m mode) {
	if r.first == modeInteractive {
		r.first = m
	}
}

// modeFlag is a boolean flag that records its mode when set to true.
type modeFlag struct {
	name     string
	mode     mode
	value    bool
	recorder *modeRecorder
}

func (f *modeFlag) String() string { return strconv.FormatBool(f.value) }
func (f *modeFlag) Type() string   { return "bool" }

func (f *modeFlag) Set(v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf(messages.RootModeFlagValueFmt, v, f.name, err)
	}
	f.value = b
	if b {
		f.recorder.record(f.mode)
	}
	return nil
}

// langFlag collects --lang values and records the lang mode on first use.
type langFlag struct {
	values   []string
	recorder *modeRecorder
}

func (f *langFlag) String() string { return "[" + strings.Join(f.values, ",") + "]" }
func (f *langFlag) Type() string   { return "strings" }

func (f *langFlag) Set(v string) error {
	f.values = append(f.values, v)
	f.recorder.record(modeLang)
	return nil
}

// collectLanguages merges --lang values with positional arguments. Each value
// may hold several identifiers separated by commas or whitespace.
func collectLanguages(flagValues []string, args []string) install.LanguageSet {
	var set install.LanguageSet
	for _, value := range append(append([]string(nil), flagValues...), args...) {
		for _, id := range strings.FieldsFunc(value, isLanguageSeparator) {
			set.Add(id)
		}
	}
	return set
}

func isLanguageSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n'
}
