package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/aimmit/diffset/internal/output"
)

// StatsCmd returns the stats command.
func StatsCmd() *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Aliases: []string{"s"},
		Usage:   "Show dataset summary without printing entries",
		Flags:   commonFlags(),
		Action:  statsAction,
	}
}

func statsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	// Top of 0 would print everything; -1 keeps the console writer to
	// the summary block only.
	opts := output.OutputOptions{Format: output.FormatConsole, Top: -1}
	writer := output.NewDatasetWriter(opts.Format)
	return writer.Write(ctx.Report(), opts)
}
