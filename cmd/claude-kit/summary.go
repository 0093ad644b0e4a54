package main

import (
	"fmt"
	"strings"

	"github.com/conn-castle/claude-kit/internal/config"
	"github.com/conn-castle/claude-kit/internal/install"
	"github.com/conn-castle/claude-kit/internal/messages"
	"github.com/conn-castle/claude-kit/internal/presenter"
)

// printSummary lists what Apply installed, where the backup went, and what
// the operator should do next.
func printSummary(p *presenter.Presenter, paths config.Paths, result install.Result) {
	p.Section(messages.SummarySection)
	for _, c := range result.Components {
		if c.Missing {
			p.Info(fmt.Sprintf(messages.SummaryComponentSkipFmt, c.Name))
			continue
		}
		p.Info(fmt.Sprintf(messages.SummaryComponentFmt, c.Name, c.Files))
	}
	if result.UserConfig {
		p.Info(messages.SummaryUserConfig)
	}
	switch result.Hooks {
	case install.HooksInstalled:
		p.Info(messages.SummaryHooksSettings)
	case install.HooksExample:
		p.Info(messages.SummaryHooksExample)
	case install.HooksUnchanged:
		p.Info(messages.SummaryHooksUnchanged)
	}
	if result.MCPExample {
		p.Info(messages.SummaryMCPExample)
	}
	if len(result.Languages) > 0 {
		p.Info(fmt.Sprintf(messages.SummaryLanguagesFmt, strings.Join(result.Languages, ", ")))
	} else {
		p.Info(messages.SummaryNoLanguages)
	}
	printBackupLine(p, result.BackupPath)
	p.Info(fmt.Sprintf(messages.SummaryTargetFmt, paths.TargetRoot))

	steps := []string{}
	if result.UserConfig {
		steps = append(steps, messages.SummaryNextStepEditConfig)
	}
	if result.Hooks == install.HooksExample {
		steps = append(steps, fmt.Sprintf(messages.SummaryNextStepHooksFmt, paths.HooksExamplePath))
	}
	if result.MCPExample {
		steps = append(steps, fmt.Sprintf(messages.SummaryNextStepMCPFmt, paths.MCPExamplePath))
	}
	steps = append(steps, messages.SummaryNextStepRestart)

	p.Section(messages.SummaryNextStepsSection)
	for i, step := range steps {
		p.Info(fmt.Sprintf(messages.SummaryNextStepFmt, i+1, step))
	}
}

func printUninstallSummary(p *presenter.Presenter, result install.UninstallResult) {
	p.Section(messages.UninstallCompleteSection)
	printBackupLine(p, result.BackupPath)
}

func printBackupLine(p *presenter.Presenter, backupPath string) {
	if backupPath == "" {
		p.Info(messages.SummaryNoBackup)
		return
	}
	p.Info(fmt.Sprintf(messages.SummaryBackupFmt, backupPath))
}
