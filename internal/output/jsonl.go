package output

import (
	"encoding/json"
	"fmt"
)

// JSONLWriter writes datasets as JSON Lines: one entry object per
// line, the interchange form consumed by training pipelines.
type JSONLWriter struct{}

// Write outputs the dataset entries as JSONL.
func (w *JSONLWriter) Write(report *DatasetReport, options OutputOptions) error {
	entries := limitTop(report.Result.Entries, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode entry: %w", err)
		}
	}
	return nil
}
