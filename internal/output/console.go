package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleWriter prints a dataset summary and entry previews to the
// console.
type ConsoleWriter struct{}

// Write outputs the dataset report to the console.
func (w *ConsoleWriter) Write(report *DatasetReport, options OutputOptions) error {
	entries := limitTop(report.Result.Entries, options.Top)

	color.Green("Commit Dataset Extraction Results")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	if report.Branch != "" {
		fmt.Printf("Branch: %s\n", report.Branch)
	}
	fmt.Printf("Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02T15:04:05"))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Entries:\t%d\n", report.Result.Len())
	fmt.Fprintf(tw, "Total diff chars:\t%d\n", report.Result.TotalDiffChars())
	fmt.Fprintf(tw, "Skipped (oversize):\t%d\n", report.Result.Skipped.Oversize)
	fmt.Fprintf(tw, "Skipped (no diff):\t%d\n", report.Result.Skipped.NoDiff)
	fmt.Fprintf(tw, "Skipped (path filter):\t%d\n", report.Result.Skipped.PathFiltered)
	if err := tw.Flush(); err != nil {
		return err
	}

	for i, entry := range entries {
		fmt.Println()
		color.Cyan("--- Entry %d ---", i+1)
		color.Yellow("Commit Message:")
		fmt.Println(entry.CommitMessage)
		color.Yellow("Diff:")
		fmt.Println(entry.Diff)
	}

	return nil
}
