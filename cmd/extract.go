package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aimmit/diffset/internal/output"
)

// ExtractCmd returns the extract command.
func ExtractCmd() *cli.Command {
	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"x"},
		Usage:   "Extract the commit dataset and serialize it",
		Flags:   commonFlags(),
		Action:  extractAction,
	}
}

func extractAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	opts := OutputOptions(c)
	writer := output.NewDatasetWriter(opts.Format)
	if err := writer.Write(ctx.Report(), opts); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Extracted %d entries (%d skipped)\n",
		ctx.Result.Len(), ctx.Result.Skipped.Total())
	return nil
}
