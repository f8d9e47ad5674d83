package main

import (
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/boolmin/internal/cli"
	"github.com/aretw0/boolmin/internal/logging"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes minimization as a JSON API over HTTP, with /healthz and
Prometheus metrics on /metrics. Results are cached in memory unless
--redis-addr is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetString("port")
		opts := sharedOptions(cmd)

		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Serve(ctx, net.JoinHostPort(host, port), opts, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("host", "", "Interface to listen on")
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
