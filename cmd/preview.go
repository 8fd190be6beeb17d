package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/aimmit/diffset/internal/output"
)

// PreviewCmd returns the preview command, which prints the first
// entries of the dataset to the console.
func PreviewCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:  "top",
			Usage: "Number of entries to preview",
			Value: 5,
		},
	)

	return &cli.Command{
		Name:    "preview",
		Aliases: []string{"p"},
		Usage:   "Print a sample of the extracted dataset",
		Flags:   flags,
		Action:  previewAction,
	}
}

func previewAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasEntries() {
		ctx.PrintNoEntriesMessage()
		return nil
	}

	opts := OutputOptions(c)
	opts.Format = output.FormatConsole
	writer := output.NewDatasetWriter(opts.Format)
	return writer.Write(ctx.Report(), opts)
}
