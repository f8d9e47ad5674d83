package main

import (
	"fmt"
	"os"

	"github.com/aretw0/boolmin/internal/cli"
	"github.com/aretw0/boolmin/pkg/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boolmin",
	Short: "boolmin minimizes boolean expressions with eqntott and espresso",
	Long: `boolmin feeds boolean expressions through eqntott and espresso and prints
the minimized result. Expressions can be given inline, read from a file or
piped through standard input with "-".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Settings file with an [Executables] section")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().String("redis-addr", "", "Cache results in Redis at this address")
	rootCmd.PersistentFlags().Duration("cache-ttl", 0, "Expiry of cached results (0 keeps them forever)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort tool calls after this long (0 waits indefinitely)")
}

// sharedOptions reads the persistent flags.
func sharedOptions(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	debug, _ := flags.GetBool("debug")
	redisAddr, _ := flags.GetString("redis-addr")
	cacheTTL, _ := flags.GetDuration("cache-ttl")
	timeout, _ := flags.GetDuration("timeout")

	return cli.Options{
		ConfigPath: configPath,
		Debug:      debug,
		RedisAddr:  redisAddr,
		CacheTTL:   cacheTTL,
		Timeout:    timeout,
	}
}
