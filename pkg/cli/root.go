package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devstub",
	Short: "devstub is a mock REST API server for frontend development and testing",
	Long: `devstub serves a realistic in-memory REST API with users, posts, mock
authentication, file uploads, simulated latency, and error injection.

Configuration can be provided via flags or a YAML configuration file.
With no arguments, devstub starts the server with built-in defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServeWithFlags(&serveFlagVals)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	initServeCmd()
	initVersionCmd()
}
