package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/turingtoy/internal/cli"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	Long: `Starts an HTTP server exposing run and validate endpoints plus
prometheus metrics. Run results can be persisted under an ID, in
memory by default or in redis with --redis-addr.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")
		ttl, _ := cmd.Flags().GetDuration("result-ttl")
		logLevel, _ := cmd.Flags().GetString("log-level")
		banner, _ := cmd.Flags().GetBool("banner")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := cli.Serve(ctx, cli.ServeOptions{
			Addr:      addr,
			RedisAddr: redisAddr,
			ResultTTL: ttl,
			LogLevel:  logLevel,
			Banner:    banner,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis-addr", "", "Redis address for result persistence (empty keeps results in memory)")
	serveCmd.Flags().Duration("result-ttl", 24*time.Hour, "Expiration for persisted results (redis only)")
	serveCmd.Flags().Bool("banner", true, "Print the startup banner on a TTY")
}
