package install

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/claude-kit/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown for settings.json.
const DefaultDiffMaxLines = 40

// DiffPreview is a rendered, possibly truncated unified diff.
type DiffPreview struct {
	Lines     []string
	Truncated bool
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// renderTruncatedUnifiedDiff diffs fromContent against toContent and keeps at
// most maxLines lines, appending a note with the number of lines dropped.
func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) DiffPreview {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, ensureTrailingNewline(fromContent), ensureTrailingNewline(toContent))
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return DiffPreview{Lines: lines}
	}
	truncated := append([]string(nil), lines[:limit]...)
	truncated = append(truncated, fmt.Sprintf(messages.InstallHooksDiffTruncatedFmt, len(lines)-limit))
	return DiffPreview{Lines: truncated, Truncated: true}
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
