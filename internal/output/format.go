package output

import (
	"time"

	"github.com/aimmit/diffset/internal/dataset"
)

// Compile-time interface conformance checks.
var (
	_ DatasetWriter = (*JSONLWriter)(nil)
	_ DatasetWriter = (*JSONWriter)(nil)
	_ DatasetWriter = (*CSVWriter)(nil)
	_ DatasetWriter = (*ConsoleWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatJSONL   OutputFormat = "jsonl"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatConsole OutputFormat = "console"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int // limit entries written; 0 writes all
	OutputPath string
}

// DatasetReport holds an extracted dataset together with run metadata.
type DatasetReport struct {
	RepoPath    string
	Branch      string
	GeneratedAt time.Time
	Result      *dataset.Result
}

// DatasetWriter writes extracted datasets.
type DatasetWriter interface {
	Write(report *DatasetReport, options OutputOptions) error
}

// NewDatasetWriter creates a dataset writer for the specified format.
func NewDatasetWriter(format OutputFormat) DatasetWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatCSV:
		return &CSVWriter{}
	case FormatConsole:
		return &ConsoleWriter{}
	default:
		return &JSONLWriter{}
	}
}
