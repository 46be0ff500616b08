package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every command.
type globalFlags struct {
	config   string
	env      string
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "spoolman-mcp",
		Short: "MCP server for the Spoolman filament inventory",
		Long:  "spoolman-mcp exposes the Spoolman REST API (vendors, filaments and spools) as MCP tools.",
		// SilenceUsage prevents printing usage on every error
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.config, "config", "spoolman-mcp.yaml", "path to configuration file (ignored if missing)")
	root.PersistentFlags().StringVar(&flags.env, "env", ".env", "path to .env file (ignored if missing)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "log file path, \"-\" for stderr (overrides config)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	root.Version = version
	root.SetVersionTemplate(fmt.Sprintf("spoolman-mcp version %s\n", version))

	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newToolsCmd(flags))
	root.AddCommand(newCallCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spoolman-mcp version %s\n", version)
		},
	}
}
