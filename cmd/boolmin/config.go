package main

import (
	"fmt"

	"github.com/aretw0/boolmin/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the executables resolved from the settings file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		settings, err := config.Load(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "settings: %s\n", settings.Path)
		fmt.Fprintf(out, "eqntott:  %s\n", settings.Executables.Eqntott)
		fmt.Fprintf(out, "espresso: %s\n", settings.Executables.Espresso)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
