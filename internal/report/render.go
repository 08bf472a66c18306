package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// Format is an output encoding for a report.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts text, markdown (or md) and html. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	default:
		return "txt"
	}
}

// Filename returns the download name, e.g. wellness-report-week-2024-03-07.txt.
func Filename(r *models.Report, f Format) string {
	return fmt.Sprintf("wellness-report-%s-%s.%s", r.Period, models.DateOf(r.GeneratedAt), f.Extension())
}

// Render encodes the report in the given format.
func Render(r *models.Report, f Format) ([]byte, error) {
	switch f {
	case FormatText:
		return []byte(Text(r)), nil
	case FormatMarkdown:
		return []byte(Markdown(r)), nil
	case FormatHTML:
		return HTML(r)
	}
	return nil, fmt.Errorf("unknown report format %q", f)
}

func periodTitle(p models.ReportPeriod) (summary, window string) {
	if p == models.ReportPeriodMonth {
		return "Monthly", "Last 30 Days"
	}
	return "Weekly", "Last 7 Days"
}

func direction(c models.Correlation) string {
	if c.Coefficient > 0 {
		return "Positive"
	}
	return "Negative"
}

const (
	rule     = "==========================================================="
	subRule  = "-----------------------------------------------------------"
	dateLong = "January 2, 2006"
)

// Text renders the plain-text report.
func Text(r *models.Report) string {
	summary, window := periodTitle(r.Period)
	var b strings.Builder

	fmt.Fprintf(&b, "PERSONAL WELLNESS REPORT\n%s Summary\n", summary)
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format(dateLong))
	fmt.Fprintf(&b, "Period: %s (%s to %s)\n\n", window, r.StartDate, r.EndDate)

	fmt.Fprintf(&b, "%s\n\nWELLNESS OVERVIEW\n%s\n", rule, subRule)
	fmt.Fprintf(&b, "Overall Wellness Score: %d%%\n", r.WellnessScore)
	fmt.Fprintf(&b, "Current Logging Streak: %d days\n", r.CurrentStreak)
	fmt.Fprintf(&b, "Longest Logging Streak: %d days\n", r.LongestStreak)
	fmt.Fprintf(&b, "Total Entries This Period: %d\n\n", r.EntryCount)

	fmt.Fprintf(&b, "%s\n\nSTATISTICAL SUMMARY\n%s\n", rule, subRule)
	for _, s := range r.Statistics {
		fmt.Fprintf(&b, "\n%s\n", s.Dimension)
		fmt.Fprintf(&b, "   Mean:     %.2f\n", s.Statistics.Mean)
		fmt.Fprintf(&b, "   Median:   %.2f\n", s.Statistics.Median)
		fmt.Fprintf(&b, "   Std Dev:  %.2f\n", s.Statistics.StdDev)
	}

	fmt.Fprintf(&b, "\n%s\n\nHABIT CORRELATIONS\n%s\n", rule, subRule)
	if len(r.Correlations) == 0 {
		b.WriteString("Not enough data to calculate correlations\n")
	}
	for i, c := range r.Correlations {
		fmt.Fprintf(&b, "%d. %s <-> %s\n", i+1, c.DimensionA, c.DimensionB)
		fmt.Fprintf(&b, "   Coefficient: %.3f (%s)\n", c.Coefficient, c.Strength)
		fmt.Fprintf(&b, "   %s relationship\n", direction(c))
	}

	fmt.Fprintf(&b, "\n%s\n\nRECOMMENDATIONS\n%s\n", rule, subRule)
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "* %s\n", rec)
	}
	fmt.Fprintf(&b, "\n%s\n", rule)

	return b.String()
}

// Markdown renders the report as GitHub-flavoured markdown.
func Markdown(r *models.Report) string {
	summary, window := periodTitle(r.Period)
	var b strings.Builder

	fmt.Fprintf(&b, "# Personal Wellness Report\n\n")
	fmt.Fprintf(&b, "**%s Summary** - %s (%s to %s), generated %s\n\n",
		summary, window, r.StartDate, r.EndDate, r.GeneratedAt.Format(dateLong))

	b.WriteString("## Wellness Overview\n\n")
	fmt.Fprintf(&b, "- Overall wellness score: **%d%%**\n", r.WellnessScore)
	fmt.Fprintf(&b, "- Current logging streak: **%d days**\n", r.CurrentStreak)
	fmt.Fprintf(&b, "- Longest logging streak: **%d days**\n", r.LongestStreak)
	fmt.Fprintf(&b, "- Entries this period: **%d**\n\n", r.EntryCount)

	b.WriteString("## Statistical Summary\n\n")
	b.WriteString("| Metric | Mean | Median | Std Dev | Min | Max |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|\n")
	for _, s := range r.Statistics {
		st := s.Statistics
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			s.Dimension, st.Mean, st.Median, st.StdDev, st.Min, st.Max)
	}

	b.WriteString("\n## Habit Correlations\n\n")
	if len(r.Correlations) == 0 {
		b.WriteString("Not enough data to calculate correlations.\n")
	} else {
		b.WriteString("| Habits | Coefficient | Strength | Direction |\n")
		b.WriteString("|---|---:|---|---|\n")
		for _, c := range r.Correlations {
			fmt.Fprintf(&b, "| %s / %s | %.3f | %s | %s |\n",
				c.DimensionA, c.DimensionB, c.Coefficient, c.Strength, direction(c))
		}
	}

	b.WriteString("\n## Recommendations\n\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

var markdownHTML = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the markdown report into a standalone HTML document.
func HTML(r *models.Report) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownHTML.Convert([]byte(Markdown(r)), &body); err != nil {
		return nil, fmt.Errorf("failed to render report html: %w", err)
	}

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<title>Personal Wellness Report</title>\n</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.Bytes(), nil
}
