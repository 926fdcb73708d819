package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/turingtoy/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine-file>",
	Short: "Run a machine description on an input string",
	Long: `Loads and validates the machine description, runs it on the input, and
prints the final tape contents. A rejected input is a normal outcome,
reported on stderr; only broken descriptions exit non-zero.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		showTrace, _ := cmd.Flags().GetBool("trace")
		jsonMode, _ := cmd.Flags().GetBool("json")
		pretty, _ := cmd.Flags().GetBool("pretty")
		logLevel, _ := cmd.Flags().GetString("log-level")

		if jsonMode && pretty {
			fmt.Println("Error: --json and --pretty cannot be used together.")
			os.Exit(1)
		}

		err := cli.Run(cli.RunOptions{
			MachinePath: args[0],
			Input:       input,
			MaxSteps:    maxSteps,
			Trace:       showTrace,
			JSON:        jsonMode,
			Pretty:      pretty,
			LogLevel:    logLevel,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "Initial tape contents")
	runCmd.Flags().Int("max-steps", -1, "Step budget (-1 runs until the machine halts on its own)")
	runCmd.Flags().BoolP("trace", "t", false, "Print the per-step execution trace")
	runCmd.Flags().Bool("json", false, "Print the full result as JSON")
	runCmd.Flags().Bool("pretty", false, "Render a markdown run report")
}
