package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "turingtoy",
	Short: "turingtoy is a deterministic Turing machine simulator",
	Long: `turingtoy loads a declarative machine description (YAML or JSON),
validates it, and executes it on an input string, reporting the final
tape, a step-by-step trace, and whether the machine accepted.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
