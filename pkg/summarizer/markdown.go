package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the summary as Markdown with input, output and reject
// sections.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# " + l10n.T("Assembly Summary") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s: %s\n\n",
		l10n.T("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05")))

	sb.WriteString("## " + l10n.T("Input") + "\n\n")
	sb.WriteString(tableHeader())
	sb.WriteString(row(l10n.T("Directory"), summary.Input.Dir))
	sb.WriteString(row(l10n.T("Frames Offered"), fmt.Sprintf("%d", summary.Input.Offered)))
	sb.WriteString("\n")

	sb.WriteString("## " + l10n.T("Output") + "\n\n")
	sb.WriteString(tableHeader())
	sb.WriteString(row(l10n.T("Path"), summary.Output.Path))
	sb.WriteString(row(l10n.T("Frames Accepted"), fmt.Sprintf("%d", summary.Output.Accepted)))
	sb.WriteString(row(l10n.T("Resolution"),
		fmt.Sprintf("%dx%d", summary.Output.Width, summary.Output.Height)))
	sb.WriteString(row(l10n.T("File Size"), formatBytes(summary.Output.FileSize)))
	sb.WriteString("\n")

	if len(summary.Rejects) > 0 {
		sb.WriteString("## " + l10n.T("Rejected Frames") + "\n\n")
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", l10n.T("File"), l10n.T("Reason")))
		sb.WriteString("|------|--------|\n")
		for _, r := range summary.Rejects {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", r.File, r.Reason))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func tableHeader() string {
	return fmt.Sprintf("| %s | %s |\n|------|-------|\n", l10n.T("Item"), l10n.T("Value"))
}

func row(item, value string) string {
	return fmt.Sprintf("| %s | %s |\n", item, value)
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
