package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts a Summary to Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var b strings.Builder

	b.WriteString("# " + l10n.T("Feed Run Summary") + "\n\n")
	b.WriteString(fmt.Sprintf("**%s**: %s\n\n",
		l10n.T("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05")))

	b.WriteString("## " + l10n.T("Run") + "\n\n")
	f.tableHeader(&b)
	f.row(&b, l10n.T("Run ID"), summary.Run.ID)
	f.row(&b, l10n.T("Camera"), summary.Run.CameraID)
	b.WriteString("\n")

	b.WriteString("## " + l10n.T("Input") + "\n\n")
	f.tableHeader(&b)
	f.row(&b, l10n.T("Directory"), summary.Input.Directory)
	f.row(&b, l10n.T("Extension"), summary.Input.Extension)
	f.row(&b, l10n.T("Start Index"), fmt.Sprintf("%d", summary.Input.StartIndex))
	f.row(&b, l10n.T("Files Seen"), fmt.Sprintf("%d", summary.Input.FilesSeen))
	f.row(&b, l10n.T("Target Frame Rate"), fmt.Sprintf("%d fps", summary.Input.TargetFPS))
	f.row(&b, l10n.T("Keyframes Only"), f.yesNo(summary.Input.KeyframeOnly))
	b.WriteString("\n")

	b.WriteString("## " + l10n.T("Feed Totals") + "\n\n")
	f.tableHeader(&b)
	f.row(&b, l10n.T("Frames Emitted"), fmt.Sprintf("%d", summary.Feed.FramesEmitted))
	f.row(&b, l10n.T("Frames Skipped"), fmt.Sprintf("%d", summary.Feed.FramesSkipped))
	f.row(&b, l10n.T("Event Rows"), fmt.Sprintf("%d", summary.Feed.SummaryRows))
	f.row(&b, l10n.T("Behind Ticks"), fmt.Sprintf("%d", summary.Feed.BehindTicks))
	f.row(&b, l10n.T("Next Index"), fmt.Sprintf("%d", summary.Feed.NextIndex))
	f.row(&b, l10n.T("Elapsed"), fmt.Sprintf("%d ms", summary.Feed.ElapsedMs))
	f.row(&b, l10n.T("Achieved Frame Rate"), fmt.Sprintf("%.1f fps", summary.Feed.AchievedFPS))
	b.WriteString("\n")

	b.WriteString("## " + l10n.T("Output") + "\n\n")
	f.tableHeader(&b)
	f.row(&b, l10n.T("Stream"), f.orNone(summary.Output.StreamPath))
	f.row(&b, l10n.T("Boundary"), summary.Output.Boundary)
	f.row(&b, l10n.T("Frame Log"), summary.Output.FrameLog)
	f.row(&b, l10n.T("Summary Log"), summary.Output.SummaryLog)
	f.row(&b, l10n.T("Audio Encoder"), f.audioEncoder(summary.Output))

	return b.String()
}

func (f *MarkdownFormatter) tableHeader(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n", l10n.T("Item"), l10n.T("Value"))
	b.WriteString("|------|-------|\n")
}

func (f *MarkdownFormatter) row(b *strings.Builder, item, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", item, value)
}

func (f *MarkdownFormatter) yesNo(v bool) string {
	if v {
		return l10n.T("Yes")
	}
	return l10n.T("No")
}

func (f *MarkdownFormatter) orNone(v string) string {
	if v == "" {
		return l10n.T("None")
	}
	return v
}

func (f *MarkdownFormatter) audioEncoder(out OutputInfo) string {
	if out.AudioEncoder == "" {
		return l10n.T("None")
	}
	if out.FallbackUsed {
		return l10n.F("%s (fallback)", out.AudioEncoder)
	}
	return out.AudioEncoder
}
