package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "turf-booking",
		Short:         "Hourly turf slot booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath,
		"path to config.toml; empty value uses defaults and TURF_* environment only")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newDatesCmd(&configPath))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
