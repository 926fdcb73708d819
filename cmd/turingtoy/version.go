package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/turingtoy"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of turingtoy",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("turingtoy version %s\n", strings.TrimSpace(turingtoy.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
