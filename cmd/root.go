package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aimmit/diffset/config"
	"github.com/aimmit/diffset/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "diffset",
		Usage:   "Extract commit message / diff pairs from Git history as a training dataset",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ExtractCmd(),
			PreviewCmd(),
			StatsCmd(),
			InitConfigCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across extraction commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch or revision to read",
		},
		&cli.IntFlag{
			Name:    "max-commits",
			Aliases: []string{"n"},
			Usage:   "Maximum number of commits to consider (0 = all)",
		},
		&cli.IntFlag{
			Name:  "max-diff-chars",
			Usage: "Drop commits whose diff exceeds this many characters",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns on touched paths to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns on touched paths to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (jsonl, json, csv, console)",
			Value:   "jsonl",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "console":
		return output.FormatConsole
	default:
		return output.FormatJSONL
	}
}

// loadConfig loads configuration from file and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if branch := c.String("branch"); branch != "" {
		cfg.Extract.Branch = branch
	}
	if c.IsSet("max-commits") {
		cfg.Extract.MaxCommits = c.Int("max-commits")
	}
	if c.IsSet("max-diff-chars") {
		cfg.Extract.MaxDiffChars = c.Int("max-diff-chars")
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
