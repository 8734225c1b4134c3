package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockd-appsync/pkg/appsync"
	"github.com/getmockd/mockd-appsync/pkg/cli/internal/flags"
	"github.com/getmockd/mockd-appsync/pkg/cli/internal/output"
)

var (
	resolveFormat string
	resolveSubs   flags.StringSlice
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the AppSync configuration and print it",
	Long: `Resolve the project's custom.appSync section into the configuration an AppSync
simulator consumes and print it.

Examples:
  # Print the resolved configuration as JSON
  mockd-appsync resolve

  # Print YAML and override a global substitution
  mockd-appsync resolve --format yaml --sub table=Posts-dev`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		resolved, err := resolveProject(p)
		if err != nil {
			return err
		}

		format := strings.ToLower(resolveFormat)
		if jsonOutput {
			format = "json"
		}
		switch format {
		case "json":
			return output.JSON(cmd.OutOrStdout(), resolved)
		case "yaml", "yml":
			return output.YAML(cmd.OutOrStdout(), resolved)
		default:
			return fmt.Errorf("unsupported format %q (want json or yaml)", resolveFormat)
		}
	},
}

// resolveProject applies --sub overrides to the project's global
// substitutions and resolves it.
func resolveProject(p *project) (*appsync.CanonicalConfig, error) {
	raw := p.cfg.Custom.AppSync

	pairs, err := resolveSubs.Pairs()
	if err != nil {
		return nil, fmt.Errorf("--sub: %w", err)
	}
	for _, pair := range pairs {
		raw.Substitutions.Set(pair.Name, pair.Value)
	}

	resolved, err := appsync.Resolve(p.env, raw)
	if err != nil {
		p.logger.Error("resolution failed", "error", err)
		return nil, err
	}
	p.logger.Info("configuration resolved",
		"name", resolved.AppSync.Name,
		"resolvers", len(resolved.Resolvers),
		"functions", len(resolved.Functions),
		"dataSources", len(resolved.DataSources),
		"mappingTemplates", len(resolved.MappingTemplates),
	)
	return resolved, nil
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "json", "Output format: json or yaml")
	resolveCmd.Flags().Var(&resolveSubs, "sub", "Global substitution name=value (repeatable)")
	rootCmd.AddCommand(resolveCmd)
}
