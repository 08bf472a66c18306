package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/report"
	"github.com/JonnyWalker81/wellness/backend/internal/service"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a wellness report",
	Long:  `Build a weekly or monthly wellness report from the stored logs and print it, or write it to a file.`,
	RunE:  runReport,
}

var (
	reportPeriod string
	reportFormat string
	reportOutput string
)

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "", "Report period: week or month (default from config)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format: text, markdown or html")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write to this file; \"-\" for the default download name")
}

func runReport(cmd *cobra.Command, args []string) error {
	period := models.ReportPeriod(reportPeriod)
	if period == "" {
		period = models.ReportPeriod(cfg.Report.DefaultPeriod)
	}
	format, err := report.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	repos, err := openRepositories(cfg.Storage)
	if err != nil {
		return err
	}
	defer repos.close()

	r, err := service.NewReportService(repos.logs, time.Now).BuildReport(cmd.Context(), period)
	if errors.Is(err, service.ErrNoReportData) {
		color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "No entries in the last %d days.\n", period.Days())
		return nil
	}
	if err != nil {
		return err
	}

	body, err := report.Render(r, format)
	if err != nil {
		return err
	}

	if reportOutput != "" {
		name := reportOutput
		if name == "-" {
			name = report.Filename(r, format)
		}
		if err := os.WriteFile(name, body, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
		return nil
	}

	if format == report.FormatText {
		return printColored(cmd.OutOrStdout(), string(body))
	}
	_, err = cmd.OutOrStdout().Write(body)
	return err
}

// printColored highlights the section headings of a text report.
func printColored(w io.Writer, text string) error {
	heading := color.New(color.FgCyan, color.Bold)
	rule := color.New(color.FgHiBlack)

	out := bufio.NewWriter(w)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed != "" && strings.Trim(trimmed, "=-") == "":
			rule.Fprintln(out, line)
		case isHeading(trimmed):
			heading.Fprintln(out, line)
		default:
			fmt.Fprintln(out, line)
		}
	}
	return out.Flush()
}

func isHeading(line string) bool {
	return line != "" && strings.ToUpper(line) == line && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}
