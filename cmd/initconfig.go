package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aimmit/diffset/config"
)

// InitConfigCmd returns the init-config command, which writes a
// configuration file with default values.
func InitConfigCmd() *cli.Command {
	return &cli.Command{
		Name:      "init-config",
		Usage:     "Write a default configuration file",
		ArgsUsage: "[path]",
		Action:    initConfigAction,
	}
}

func initConfigAction(c *cli.Context) error {
	path := ".diffset.json"
	if c.NArg() > 0 {
		path = c.Args().Get(0)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}
