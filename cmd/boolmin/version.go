package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/boolmin"
	"github.com/aretw0/boolmin/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of boolmin",
	Run: func(cmd *cobra.Command, args []string) {
		short, _ := cmd.Flags().GetBool("short")
		if short {
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(boolmin.Version))
			return
		}
		tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(boolmin.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("short", false, "Print only the version number")
}
