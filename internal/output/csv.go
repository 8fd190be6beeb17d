package output

// CSVWriter writes datasets as CSV with one row per entry.
type CSVWriter struct{}

// Write outputs the dataset as CSV.
func (w *CSVWriter) Write(report *DatasetReport, options OutputOptions) error {
	entries := limitTop(report.Result.Entries, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"CommitMessage", "Diff"}); err != nil {
		return err
	}

	for _, entry := range entries {
		if err := writer.Write([]string{entry.CommitMessage, entry.Diff}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
