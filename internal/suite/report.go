package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report colors
var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#94A3B8")
	colorDim     = lipgloss.Color("#64748B")
)

type reportStyles struct {
	title   lipgloss.Style
	status  map[Status]lipgloss.Style
	message lipgloss.Style
	dim     lipgloss.Style
}

func newReportStyles(color bool) reportStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return reportStyles{
			title:   plain,
			status:  map[Status]lipgloss.Style{StatusPass: plain, StatusFail: plain, StatusSkip: plain},
			message: plain,
			dim:     plain,
		}
	}
	return reportStyles{
		title: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		status: map[Status]lipgloss.Style{
			StatusPass: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
			StatusFail: lipgloss.NewStyle().Foreground(colorError).Bold(true),
			StatusSkip: lipgloss.NewStyle().Foreground(colorWarning),
		},
		message: lipgloss.NewStyle().Foreground(colorMuted),
		dim:     lipgloss.NewStyle().Foreground(colorDim),
	}
}

// RenderConsole writes a human-readable report. Failed tests list the
// failing step and its message.
func RenderConsole(w io.Writer, report *Report, color bool) error {
	styles := newReportStyles(color)
	var b strings.Builder

	b.WriteString(styles.title.Render("Suite: " + report.Suite))
	b.WriteString(" " + styles.dim.Render("(run "+report.RunID+")"))
	b.WriteString("\n")

	for _, test := range report.Tests {
		fmt.Fprintf(&b, "  %s  %s %s\n",
			styles.status[test.Status].Render(string(test.Status)),
			test.Name,
			styles.dim.Render(fmt.Sprintf("(%.1fms)", test.DurationMS)))

		if test.Status == StatusPass {
			continue
		}
		for i, step := range test.Steps {
			if step.Status != StatusFail {
				continue
			}
			fmt.Fprintf(&b, "        step %d %s: %s\n", i+1, step.Keyword, styles.message.Render(step.Message))
		}
		if test.Status == StatusSkip && test.Message != "" {
			fmt.Fprintf(&b, "        %s\n", styles.message.Render(test.Message))
		}
	}

	passed, failed, skipped := report.Counts()
	summary := fmt.Sprintf("%d tests, %d passed, %d failed, %d skipped", len(report.Tests), passed, failed, skipped)
	summaryStyle := styles.status[StatusPass]
	if failed > 0 {
		summaryStyle = styles.status[StatusFail]
	}
	b.WriteString(summaryStyle.Render(summary))
	b.WriteString(" " + styles.dim.Render(fmt.Sprintf("in %.1fms", report.DurationMS)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes the report as indented JSON
func RenderJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
