package main

import (
	"fmt"

	"github.com/aretw0/boolmin/internal/cli"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the shared result cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:     "purge",
	Short:   "Delete every cached result from Redis",
	Example: `  boolmin cache purge --redis-addr localhost:6379`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sharedOptions(cmd)
		removed, err := cli.PurgeCache(cmd.Context(), opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached results\n", removed)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
