package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	logFile    string
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mockd-appsync",
	Short: "mockd-appsync resolves serverless AppSync configuration for local simulation",
	Long: `mockd-appsync turns the custom.appSync section of a serverless project into the
fully-resolved configuration an AppSync simulator consumes: merged schema, resolvers,
pipeline functions, data sources and mapping templates with substitutions applied.

By default the project file is discovered in the current directory
(serverless.yml, serverless.yaml, then serverless.json).`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Project file (default: discovered in the current directory)")
	pf.StringVar(&envFile, "env-file", "", "Dotenv file loaded before the project file is read")
	pf.StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (default: error)")
	pf.StringVar(&logFormat, "log-format", "text", "Diagnostic log format: text or json")
	pf.StringVar(&logFile, "log-file", "", "Also write JSON diagnostic logs to this file")
	pf.BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
