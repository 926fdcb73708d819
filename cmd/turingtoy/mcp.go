package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/turingtoy"
	"github.com/aretw0/turingtoy/internal/logging"
	"github.com/aretw0/turingtoy/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the simulator as an MCP server on stdio",
	Run: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetString("log-level")
		sim := turingtoy.New(turingtoy.WithLogger(logging.New(logging.ParseLevel(logLevel))))

		server := mcp.NewServer(sim)
		if err := server.ServeStdio(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
