package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/boolmin/internal/cli"
	"github.com/aretw0/boolmin/internal/logging"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts boolmin as an MCP Server over stdio.
This allows AI agents to call minimize, minimize_batch and minimize_accepting as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sharedOptions(cmd)

		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger := logging.NewWithWriter(os.Stderr, level, false)

		return cli.ServeMCP(opts, logger)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
