package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/claude-kit/internal/config"
	"github.com/conn-castle/claude-kit/internal/install"
	"github.com/conn-castle/claude-kit/internal/logger"
	"github.com/conn-castle/claude-kit/internal/messages"
	"github.com/conn-castle/claude-kit/internal/presenter"
	"github.com/conn-castle/claude-kit/internal/selector"
	"github.com/conn-castle/claude-kit/internal/terminal"
)

const (
	flagFull      = "full"
	flagCore      = "core"
	flagLang      = "lang"
	flagUninstall = "uninstall"
	flagSource    = "source"
	flagTarget    = "target"
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagNoColor   = "no-color"
	flagDiffLines = "diff-lines"
)

// newUI picks the huh UI on a terminal and numbered line prompts otherwise.
var newUI = func(in io.Reader, out io.Writer) selector.UI {
	if terminal.IsInteractive(in, out) {
		return selector.NewHuhUI()
	}
	return selector.NewLineUI(in, out)
}

var newSystem = func() install.System { return install.RealSystem{} }

type rootOptions struct {
	recorder   modeRecorder
	langs      langFlag
	source     string
	target     string
	configPath string
	logLevel   string
	noColor    bool
	diffLines  int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	opts.langs.recorder = &opts.recorder

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          fmt.Sprintf(messages.RootLongFmt, strings.Join(install.SupportedLanguages(), ", ")),
		Example:       messages.RootExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)

	flags := cmd.Flags()
	addModeFlag(cmd, opts, flagFull, "f", modeFull, messages.FlagFull)
	addModeFlag(cmd, opts, flagCore, "c", modeCore, messages.FlagCore)
	flags.VarP(&opts.langs, flagLang, "l", messages.FlagLang)
	addModeFlag(cmd, opts, flagUninstall, "u", modeUninstall, messages.FlagUninstall)
	flags.StringVar(&opts.source, flagSource, "", messages.FlagSource)
	flags.StringVar(&opts.target, flagTarget, "", messages.FlagTarget)
	flags.StringVar(&opts.configPath, flagConfig, "", messages.FlagConfig)
	flags.StringVar(&opts.logLevel, flagLogLevel, logger.DefaultLevel.String(), messages.FlagLogLevel)
	flags.BoolVar(&opts.noColor, flagNoColor, false, messages.FlagNoColor)
	flags.IntVar(&opts.diffLines, flagDiffLines, install.DefaultDiffMaxLines, messages.FlagDiffLines)
	return cmd
}

func addModeFlag(cmd *cobra.Command, opts *rootOptions, name string, shorthand string, m mode, usage string) {
	value := &modeFlag{name: name, mode: m, recorder: &opts.recorder}
	flag := cmd.Flags().VarPF(value, name, shorthand, usage)
	flag.NoOptDefVal = "true"
}

// run resolves paths and dispatches to the mode chosen on the command line.
func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if err := logger.SetLogLevel(opts.logLevel); err != nil {
		return fmt.Errorf(messages.RootInvalidLogLevelFmt, opts.logLevel, err)
	}
	logger.SetLogOutput(cmd.ErrOrStderr())

	selected := opts.recorder.first
	if selected != modeLang && len(args) > 0 {
		return errors.New(messages.RootLangArgsWithoutFlag)
	}
	if opts.diffLines <= 0 {
		return fmt.Errorf(messages.RootDiffLinesInvalidFmt, opts.diffLines)
	}

	paths, err := resolvePaths(opts)
	if err != nil {
		return err
	}
	ctx := logger.WithLogger(cmd.Context(), logger.G(cmd.Context()).WithField("target", paths.TargetRoot))
	cmd.SetContext(ctx)
	log := logger.G(ctx)
	log.WithField("source", paths.SourceRoot).Debug("resolved paths")

	p := presenter.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.noColor)
	inst, err := install.New(install.Options{
		Paths:        paths,
		System:       newSystem(),
		Reporter:     p,
		Log:          log,
		DiffMaxLines: opts.diffLines,
	})
	if err != nil {
		return err
	}
	ui := newUI(cmd.InOrStdin(), cmd.OutOrStdout())

	var plan install.Plan
	switch selected {
	case modeUninstall:
		return runUninstall(ctx, p, inst, ui)
	case modeCore:
		plan = install.CorePlan()
	case modeLang:
		langs := collectLanguages(opts.langs.values, args)
		if langs.Len() == 0 {
			return errors.New(messages.RootLangRequiresValue)
		}
		warnUnsupportedLanguages(p, langs)
		plan = install.FullPlan(langs)
	case modeFull:
		langs, err := selector.SelectLanguages(ui, install.SupportedLanguages())
		if err != nil {
			return cancelled(p, err)
		}
		plan = install.FullPlan(langs)
	default:
		plan, err = selector.Run(ui, install.SupportedLanguages())
		if err != nil {
			return cancelled(p, err)
		}
	}

	if plan.Empty() {
		p.Info(messages.InstallationEmptyPlan)
		return nil
	}
	result, err := inst.Apply(plan)
	if err != nil {
		return err
	}
	printSummary(p, paths, result)
	return nil
}

// cancelled turns selector cancellation into a clean exit and passes other errors through.
func cancelled(p *presenter.Presenter, err error) error {
	if errors.Is(err, selector.ErrCancelled) {
		p.Info(messages.InstallationCancelled)
		return nil
	}
	return err
}

func resolvePaths(opts *rootOptions) (config.Paths, error) {
	cwd, err := getwd()
	if err != nil {
		return config.Paths{}, fmt.Errorf(messages.RootResolveWorkingDirFmt, err)
	}
	var cfg *config.File
	if strings.TrimSpace(opts.configPath) != "" {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return config.Paths{}, err
		}
	}
	return config.Resolve(cwd, cfg, config.Overrides{Source: opts.source, Target: opts.target})
}

// warnUnsupportedLanguages flags --lang identifiers outside the catalog.
func warnUnsupportedLanguages(p *presenter.Presenter, langs install.LanguageSet) {
	for _, id := range langs.Items() {
		if !install.IsSupportedLanguage(id) {
			p.Warning(fmt.Sprintf(messages.RootUnsupportedLangFmt, id, strings.Join(install.SupportedLanguages(), ", ")))
		}
	}
}

func runUninstall(ctx context.Context, p *presenter.Presenter, inst *install.Installer, ui selector.UI) error {
	log := logger.G(ctx)
	prompt := func(question string) (string, error) {
		var answer string
		if err := ui.Input(question, &answer); err != nil {
			if errors.Is(err, selector.ErrCancelled) {
				log.Debug("uninstall prompt cancelled")
				return "", nil
			}
			return "", err
		}
		return answer, nil
	}
	result, err := inst.Uninstall(prompt)
	if err != nil || result.Aborted {
		return err
	}
	printUninstallSummary(p, result)
	return nil
}
