package output

import (
	"time"

	"github.com/aimmit/diffset/internal/dataset"
)

// JSONWriter writes datasets as a single JSON document with run
// metadata.
type JSONWriter struct{}

// JSONReport is the JSON output structure for an extracted dataset.
type JSONReport struct {
	RepoPath     string          `json:"repo"`
	Branch       string          `json:"branch,omitempty"`
	GeneratedAt  string          `json:"generatedAt"`
	TotalEntries int             `json:"totalEntries"`
	Skipped      JSONSkipCounts  `json:"skipped"`
	Entries      []dataset.Entry `json:"entries"`
}

// JSONSkipCounts holds the skip tallies in JSON format.
type JSONSkipCounts struct {
	Oversize     int `json:"oversize"`
	NoDiff       int `json:"noDiff"`
	PathFiltered int `json:"pathFiltered"`
}

// Write outputs the dataset as JSON.
func (w *JSONWriter) Write(report *DatasetReport, options OutputOptions) error {
	entries := limitTop(report.Result.Entries, options.Top)

	jsonReport := JSONReport{
		RepoPath:     report.RepoPath,
		Branch:       report.Branch,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalEntries: len(report.Result.Entries),
		Skipped: JSONSkipCounts{
			Oversize:     report.Result.Skipped.Oversize,
			NoDiff:       report.Result.Skipped.NoDiff,
			PathFiltered: report.Result.Skipped.PathFiltered,
		},
		Entries: entries,
	}

	return writeJSON(jsonReport, options.OutputPath)
}
